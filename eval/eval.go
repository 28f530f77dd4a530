package eval

import (
	"fmt"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/debug"

	"github.com/expr-lang/expr"
)

// Eval evaluates the expr-lang expression code against the document with
// the given root. The expression sees the document as plain values under
// the name doc, and may call the registered functions.
func Eval(code string, root yamlnav.Node) (any, error) {
	env := map[string]any{
		"doc": root.Interface(),
	}
	opts := append(exprOpts(root), expr.Env(env))
	prg, err := expr.Compile(code, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrEval, code, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: run %q: %w", ErrEval, code, err)
	}
	if debug.Query() {
		debug.Logf("eval %q: %v\n", code, res)
	}
	return res, nil
}

func exprOpts(root yamlnav.Node) []expr.Option {
	funcs := Funcs()
	res := make([]expr.Option, 0, len(funcs))
	for _, f := range funcs {
		fn := f.Fn
		res = append(res, expr.Function(f.Name, func(params ...any) (any, error) {
			return fn(root, params...)
		}, f.Types...))
	}
	return res
}
