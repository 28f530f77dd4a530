package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/yamlnav/eval"

	"github.com/scott-cotton/cli"
)

func ynavEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Funcs {
		for _, f := range eval.Funcs() {
			fmt.Fprintln(cc.Out, f.Name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	code := args[0]
	ins, err := loadArgs(cfg.MainConfig, cc.In, args[1:])
	if err != nil {
		return err
	}
	for _, in := range ins {
		res, err := eval.Eval(code, in.root)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", in.name, err)
		}
		if err := writeValue(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// writeValue writes strings as is and other values as json.
func writeValue(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(d))
	return err
}
