package engine

import (
	"errors"
	"fmt"

	"github.com/signadot/yamlnav/document"
	"github.com/signadot/yamlnav/token"
)

var (
	ErrParse        = errors.New("parse error")
	ErrEngineExists = errors.New("engine exists")
	ErrNoEngine     = errors.New("no such engine")
)

// ParseError reports a failure to parse a document. Mark is nil when the
// engine gave no position.
type ParseError struct {
	Engine string
	Mark   *document.Mark
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Mark == nil {
		return fmt.Sprintf("%s (%s): %s", ErrParse, e.Engine, e.Msg)
	}
	return fmt.Sprintf("%s (%s) at %s: %s", ErrParse, e.Engine, e.Mark, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// markAt returns the mark of a 1-based line and column in src.
func markAt(src []byte, line, col int) *document.Mark {
	p := token.NewPosDoc(src)
	off := p.Offset(line-1, col-1)
	l, c := p.LineRuneCol(off)
	return &document.Mark{Offset: off, Line: l, Column: c}
}

func offsetMark(src []byte, off int) *document.Mark {
	p := token.NewPosDoc(src)
	l, c := p.LineRuneCol(off)
	return &document.Mark{Offset: max(0, min(off, len(src))), Line: l, Column: c}
}
