package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/yamlnav"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ins, err := loadArgs(cfg.MainConfig, cc.In, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	for i, in := range ins {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := writeTree(cc.Out, colors, in.root, cfg.Marks); err != nil {
			return fmt.Errorf("error writing %s: %w", in.name, err)
		}
	}
	return nil
}

// writeTree writes one line per node of n, indented by depth, with the
// node's key or index, its type and scalar text.
func writeTree(w io.Writer, colors *Colors, n yamlnav.Node, marks bool) error {
	if n.IsNull() {
		_, err := fmt.Fprintln(w, colors.Color(yamlnav.Null, TypeColor, "Null"))
		return err
	}
	depth := 0
	return yamlnav.Walk(n, func(path string, y yamlnav.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return true, nil
		}
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		depth++
		if depth > 1 {
			sb.WriteString(colors.Color(yamlnav.Map, KeyColor, lastSegment(path)) + " ")
		}
		t := y.Type()
		sb.WriteString(colors.Color(t, TypeColor, t.String()))
		switch t {
		case yamlnav.Scalar:
			sb.WriteString(" " + colors.Color(t, ValueColor, strconv.Quote(y.Text())))
		default:
			sb.WriteString(fmt.Sprintf("(%d)", y.Size()))
		}
		if marks {
			sb.WriteString(" " + colors.Color(t, MarkColor, y.StartMark().String()+"-"+y.EndMark().String()))
		}
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return true, err
	})
}

// lastSegment returns the final ".key" or "[i]" of a path produced by
// yamlnav.Walk.
func lastSegment(path string) string {
	if strings.HasSuffix(path, "]") {
		if i := strings.LastIndexByte(path, '['); i >= 0 {
			return path[i:]
		}
	}
	if strings.HasSuffix(path, "'") {
		if i := strings.LastIndex(path, ".'"); i >= 0 {
			return path[i+1:]
		}
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
