package libdiff

import (
	"fmt"

	"github.com/signadot/yamlnav"
)

// Change is one difference between two documents. From is Null for Added
// and To is Null for Removed. Path addresses To, or From when the change is
// a removal.
type Change struct {
	Path string
	Op   Op
	From yamlnav.Node
	To   yamlnav.Node
	// Text is a character level rendering of a Changed scalar, with
	// deletions as [-x-] and insertions as {+x+}. It is empty when the
	// scalars have little in common.
	Text string
}

func (c Change) String() string {
	switch c.Op {
	case Added:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, summary(c.To))
	case Removed:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, summary(c.From))
	}
	if c.Text != "" {
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, c.Text)
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op.Sign(), c.Path, summary(c.From), summary(c.To))
}

func summary(n yamlnav.Node) string {
	switch n.Type() {
	case yamlnav.Scalar:
		return fmt.Sprintf("%q", n.Text())
	case yamlnav.Sequence:
		return fmt.Sprintf("<Sequence len=%d>", n.Size())
	case yamlnav.Map:
		return fmt.Sprintf("<Map len=%d>", n.Size())
	}
	return "<Null>"
}

func makeChange(path string, from, to yamlnav.Node) Change {
	switch {
	case from.IsNull():
		return Change{Path: path, Op: Added, To: to}
	case to.IsNull():
		return Change{Path: path, Op: Removed, From: from}
	case from.Type() != to.Type():
		return Change{Path: path, Op: Retyped, From: from, To: to}
	default:
		return Change{Path: path, Op: Changed, From: from, To: to, Text: DiffString(from.Text(), to.Text())}
	}
}
