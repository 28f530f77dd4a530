package main

import (
	"fmt"
	"io"

	"github.com/signadot/yamlnav"

	"github.com/scott-cotton/cli"
)

func typ(cfg *TypeConfig, cc *cli.Context, args []string) error {
	return inspect(cfg.MainConfig, cfg.Type, "type", cc, args, func(w io.Writer, colors *Colors, n yamlnav.Node) error {
		t := n.Type()
		_, err := fmt.Fprintf(w, "%s\t%d\n", colors.Color(t, TypeColor, t.String()), n.Size())
		return err
	})
}

func pos(cfg *PosConfig, cc *cli.Context, args []string) error {
	return inspect(cfg.MainConfig, cfg.Pos, "pos", cc, args, writePos)
}

func writePos(w io.Writer, colors *Colors, n yamlnav.Node) error {
	start, end := n.StartMark(), n.EndMark()
	_, err := fmt.Fprintf(w, "%s\t%s\n",
		colors.Color(n.Type(), MarkColor, fmt.Sprintf("%s-%s", start, end)),
		colors.Color(n.Type(), MarkColor, fmt.Sprintf("[%d,%d)", start.Offset, end.Offset)))
	return err
}

// inspect runs f on every node selected by the path in args[0], and on
// Null if nothing is selected.
func inspect(cfg *MainConfig, cmd *cli.Command, name string, cc *cli.Context, args []string, f func(io.Writer, *Colors, yamlnav.Node) error) error {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, name)
	}
	path, err := pathArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := loadArgs(cfg, cc.In, args[1:])
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	for _, in := range ins {
		res, err := in.root.Query(path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if len(res) == 0 {
			res = []yamlnav.Node{{}}
		}
		for _, n := range res {
			if err := f(cc.Out, colors, n); err != nil {
				return fmt.Errorf("error writing %s: %w", in.name, err)
			}
		}
	}
	return nil
}
