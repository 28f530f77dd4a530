package eval

import "errors"

var (
	ErrEval         = errors.New("eval error")
	ErrFuncExists   = errors.New("function exists")
	ErrFuncArgument = errors.New("bad function argument")
)
