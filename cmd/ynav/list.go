package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/yamlnav"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path, err := pathArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := loadArgs(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	for _, in := range ins {
		res, err := in.root.Query(path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, n := range res {
			if err := listChildren(cc.Out, colors, n); err != nil {
				return fmt.Errorf("error listing %s: %w", in.name, err)
			}
		}
	}
	return nil
}

// listChildren writes one line per child of n: its index or key, and its
// type. A scalar is listed as itself.
func listChildren(w io.Writer, colors *Colors, n yamlnav.Node) error {
	line := func(label string, y yamlnav.Node) error {
		_, err := fmt.Fprintf(w, "%s\t%s\n", label, colors.Color(y.Type(), TypeColor, y.Type().String()))
		return err
	}
	switch n.Type() {
	case yamlnav.Sequence:
		for i, y := range n.Items() {
			if err := line(colors.Color(yamlnav.Sequence, KeyColor, "["+strconv.Itoa(i)+"]"), y); err != nil {
				return err
			}
		}
	case yamlnav.Map:
		for it := n.Begin(); !it.Equal(n.End()); it = it.Next() {
			k, v := it.Elem().Pair()
			label := "?" + strconv.Itoa(it.Pos())
			if text, ok := k.Scalar(); ok {
				label = yamlnav.FieldPath(text)
			}
			if err := line(colors.Color(yamlnav.Map, KeyColor, label), v); err != nil {
				return err
			}
		}
	case yamlnav.Scalar:
		_, err := fmt.Fprintf(w, "%s\t%s\n", colors.Color(yamlnav.Scalar, ValueColor, strconv.Quote(n.Text())), colors.Color(yamlnav.Scalar, TypeColor, "Scalar"))
		return err
	}
	return nil
}
