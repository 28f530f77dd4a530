package document

import "github.com/signadot/yamlnav/token"

// Ref addresses a node within a Document. Refs are 1-based; 0 is "no node".
type Ref int

// Pair is one mapping entry.
type Pair struct {
	Key   Ref
	Value Ref
}

type node struct {
	kind  Kind
	text  string
	items []Ref
	pairs []Pair
	start int
	end   int
	reach int
}

type Document struct {
	engine string
	nodes  []node
	root   Ref
	pos    *token.PosDoc
}

func (d *Document) node(r Ref) *node {
	if d == nil || r <= 0 || int(r) > len(d.nodes) {
		return nil
	}
	return &d.nodes[r-1]
}

// Root returns the root node, or 0 for an empty document.
func (d *Document) Root() Ref {
	if d == nil {
		return 0
	}
	return d.root
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.nodes)
}

// Engine names the engine which parsed the document.
func (d *Document) Engine() string {
	if d == nil {
		return ""
	}
	return d.engine
}

// Source returns the bytes the document was parsed from. Callers must not
// modify them.
func (d *Document) Source() []byte {
	if d == nil {
		return nil
	}
	return d.pos.Bytes()
}

func (d *Document) Kind(r Ref) Kind {
	n := d.node(r)
	if n == nil {
		return NoNode
	}
	return n.kind
}

// Scalar returns the resolved text of a scalar node. ok is false for any
// other node.
func (d *Document) Scalar(r Ref) (text string, ok bool) {
	n := d.node(r)
	if n == nil || n.kind != ScalarNode {
		return "", false
	}
	return n.text, true
}

// Items returns the children of a sequence node. The slice is shared with
// the document and must not be modified.
func (d *Document) Items(r Ref) []Ref {
	n := d.node(r)
	if n == nil || n.kind != SequenceNode {
		return nil
	}
	return n.items
}

// Pairs returns the entries of a mapping node in document order. The
// slice is shared with the document and must not be modified.
func (d *Document) Pairs(r Ref) []Pair {
	n := d.node(r)
	if n == nil || n.kind != MappingNode {
		return nil
	}
	return n.pairs
}

func (d *Document) StartMark(r Ref) Mark {
	n := d.node(r)
	if n == nil {
		return Mark{}
	}
	return d.mark(n.start)
}

func (d *Document) EndMark(r Ref) Mark {
	n := d.node(r)
	if n == nil {
		return Mark{}
	}
	return d.mark(n.end)
}

// Pos returns the source position at which r starts, for error messages.
func (d *Document) Pos(r Ref) *token.Pos {
	n := d.node(r)
	if n == nil {
		return nil
	}
	return d.pos.Pos(n.start)
}

func (d *Document) mark(off int) Mark {
	line, col := d.pos.LineRuneCol(off)
	return Mark{Offset: off, Line: line, Column: col}
}
