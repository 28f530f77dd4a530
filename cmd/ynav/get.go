package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamlnav"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := pathArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := loadArgs(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	found := 0
	for _, in := range ins {
		res, err := in.root.GetPath(path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if res.IsNull() {
			// don't print anything and don't yell either
			continue
		}
		if err := writeSep(cc.Out, found); err != nil {
			return err
		}
		found++
		if err := writeNode(cc.Out, res, cfg.Text); err != nil {
			return fmt.Errorf("error writing %s of %s: %w", path, in.name, err)
		}
	}
	return nil
}

// writeNode writes the source text of n, or its resolved text if n is a
// scalar and text is set.
func writeNode(w io.Writer, n yamlnav.Node, text bool) error {
	var s string
	if text && n.IsScalar() {
		s = n.Text()
	} else {
		s = dedent(n.StartMark().Column, string(source(n)))
	}
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}

// source returns the text of n in its document.
func source(n yamlnav.Node) []byte {
	src := n.Document().Source()
	start, end := n.StartMark().Offset, n.EndMark().Offset
	if start > end || end > len(src) {
		return nil
	}
	return src[start:end]
}

// dedent removes the common indentation of text which starts at column
// col of its first line.
func dedent(col int, text string) string {
	lines := strings.Split(strings.Repeat(" ", col)+text, "\n")
	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		if n := len(line) - len(trimmed); indent == -1 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " ")
		}
	}
	return strings.Join(lines, "\n")
}
