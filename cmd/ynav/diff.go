package main

import (
	"fmt"
	"io"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := loadOne(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	y2, err := loadOne(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return err
	}
	cs := libdiff.Diff(y1, y2)
	if len(cs) == 0 {
		return nil
	}
	if cfg.Reverse {
		cs = libdiff.Reverse(cs)
	}
	if err := writeChanges(cc.Out, cfg.colors(cc.Out), cs); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func loadOne(cfg *MainConfig, in io.Reader, arg string) (yamlnav.Node, error) {
	d, err := readArg(in, arg)
	if err != nil {
		return yamlnav.Node{}, fmt.Errorf("error reading %s: %w", arg, err)
	}
	root, err := yamlnav.LoadBytes(d, cfg.loadOpts()...)
	if err != nil {
		return yamlnav.Node{}, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return root, nil
}

func writeChanges(w io.Writer, colors *Colors, cs []libdiff.Change) error {
	for _, c := range cs {
		n := c.To
		if c.Op == libdiff.Removed {
			n = c.From
		}
		line := colors.Op(c.Op, c.String())
		mark := colors.Color(n.Type(), MarkColor, n.StartMark().String())
		if _, err := fmt.Fprintf(w, "%s\t%s\n", line, mark); err != nil {
			return err
		}
	}
	return nil
}
