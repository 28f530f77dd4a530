package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlnav"
)

// input is a loaded document together with the name of its file.
type input struct {
	name string
	root yamlnav.Node
}

func readArg(in io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(in)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// loadArgs loads the documents of each file in args, or of in when args is
// empty. Only the first document of each file is loaded unless -a is set.
func loadArgs(cfg *MainConfig, in io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res []input
	for _, arg := range args {
		d, err := readArg(in, arg)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", arg, err)
		}
		if !cfg.All {
			root, err := yamlnav.LoadBytes(d, cfg.loadOpts()...)
			if err != nil {
				return nil, fmt.Errorf("error decoding %s: %w", arg, err)
			}
			res = append(res, input{name: arg, root: root})
			continue
		}
		roots, err := yamlnav.LoadAll(d, cfg.loadOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		for i, root := range roots {
			res = append(res, input{name: fmt.Sprintf("%s#%d", arg, i), root: root})
		}
	}
	return res, nil
}

// pathArg normalizes a path argument so that "a.b" and ".a.b" mean
// "$.a.b".
func pathArg(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("invalid path \"\"")
	}
	switch p[0] {
	case '$':
		return p, nil
	case '.', '[':
		return "$" + p, nil
	}
	return "$." + p, nil
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}
