package eval

import (
	"fmt"
	"os"

	"github.com/signadot/yamlnav"
)

func builtins() []*Func {
	return []*Func{
		{
			Name: "getpath",
			Fn: func(root yamlnav.Node, params ...any) (any, error) {
				n, err := pathArg(root, params)
				if err != nil {
					return nil, err
				}
				return n.Interface(), nil
			},
			Types: []any{new(func(string) any)},
		},
		{
			Name: "listpath",
			Fn: func(root yamlnav.Node, params ...any) (any, error) {
				path, err := stringArg(params)
				if err != nil {
					return nil, err
				}
				ns, err := root.Query(path)
				if err != nil {
					return nil, err
				}
				res := make([]any, len(ns))
				for i, n := range ns {
					res[i] = n.Interface()
				}
				return res, nil
			},
			Types: []any{new(func(string) []any)},
		},
		{
			Name: "kind",
			Fn: func(root yamlnav.Node, params ...any) (any, error) {
				n, err := pathArg(root, params)
				if err != nil {
					return nil, err
				}
				return n.Type().String(), nil
			},
			Types: []any{new(func(string) string)},
		},
		{
			Name: "size",
			Fn: func(root yamlnav.Node, params ...any) (any, error) {
				n, err := pathArg(root, params)
				if err != nil {
					return nil, err
				}
				return n.Size(), nil
			},
			Types: []any{new(func(string) int)},
		},
		{
			Name: "keys",
			Fn: func(root yamlnav.Node, params ...any) (any, error) {
				n, err := pathArg(root, params)
				if err != nil {
					return nil, err
				}
				res := []string{}
				for k := range n.Entries() {
					if text, ok := k.Scalar(); ok {
						res = append(res, text)
					}
				}
				return res, nil
			},
			Types: []any{new(func(string) []string)},
		},
		{
			Name: "getenv",
			Fn: func(_ yamlnav.Node, params ...any) (any, error) {
				name, err := stringArg(params)
				if err != nil {
					return nil, err
				}
				return os.Getenv(name), nil
			},
			Types: []any{new(func(string) string)},
		},
	}
}

func stringArg(params []any) (string, error) {
	if len(params) != 1 {
		return "", fmt.Errorf("%w: expected 1 argument, got %d", ErrFuncArgument, len(params))
	}
	s, ok := params[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %T", ErrFuncArgument, params[0])
	}
	return s, nil
}

func pathArg(root yamlnav.Node, params []any) (yamlnav.Node, error) {
	path, err := stringArg(params)
	if err != nil {
		return yamlnav.Node{}, err
	}
	return root.GetPath(path)
}
