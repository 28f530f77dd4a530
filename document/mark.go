package document

import "fmt"

// Mark is a position in the source: a byte offset together with the
// 0-based line and the 0-based column counted in characters.
type Mark struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (m Mark) IsZero() bool {
	return m == Mark{}
}

// Before reports whether m precedes o in the source.
func (m Mark) Before(o Mark) bool {
	return m.Offset < o.Offset
}

func (m Mark) String() string {
	return fmt.Sprintf("%d:%d", m.Line+1, m.Column+1)
}
