package yamlnav

import (
	"iter"

	"github.com/signadot/yamlnav/document"
)

type Type int

const (
	Null Type = iota
	Scalar
	Sequence
	Map
)

func (t Type) String() string {
	s, ok := map[Type]string{
		Null:     "Null",
		Scalar:   "Scalar",
		Sequence: "Sequence",
		Map:      "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Node refers to one node of a Document. The zero Node is Null.
type Node struct {
	doc *document.Document
	ref document.Ref
}

// Root returns the root of doc, which is Null for an empty document.
func Root(doc *document.Document) Node {
	return at(doc, doc.Root())
}

func at(doc *document.Document, r document.Ref) Node {
	if r == 0 {
		return Node{}
	}
	return Node{doc: doc, ref: r}
}

func (n Node) Type() Type {
	switch n.doc.Kind(n.ref) {
	case document.ScalarNode:
		return Scalar
	case document.SequenceNode:
		return Sequence
	case document.MappingNode:
		return Map
	default:
		return Null
	}
}

func (n Node) IsNull() bool     { return n.Type() == Null }
func (n Node) IsScalar() bool   { return n.Type() == Scalar }
func (n Node) IsSequence() bool { return n.Type() == Sequence }
func (n Node) IsMap() bool      { return n.Type() == Map }

// Bool reports whether n is not Null.
func (n Node) Bool() bool {
	return n.Type() != Null
}

// Document returns the document n belongs to, or nil for a Null node.
func (n Node) Document() *document.Document {
	if n.ref == 0 {
		return nil
	}
	return n.doc
}

func (n Node) StartMark() document.Mark {
	return n.doc.StartMark(n.ref)
}

// EndMark returns the position just past the text of n.
func (n Node) EndMark() document.Mark {
	return n.doc.EndMark(n.ref)
}

// Scalar returns the resolved text of a scalar node. ok is false if n is
// not a scalar.
func (n Node) Scalar() (text string, ok bool) {
	return n.doc.Scalar(n.ref)
}

// Text is like Scalar but returns "" when n is not a scalar.
func (n Node) Text() string {
	text, _ := n.Scalar()
	return text
}

// Index returns the i'th item of a sequence, or Null.
func (n Node) Index(i int) Node {
	items := n.doc.Items(n.ref)
	if i < 0 || i >= len(items) {
		return Node{}
	}
	return at(n.doc, items[i])
}

// Key returns the value of the first entry of a map whose key is a scalar
// with text k, or Null. Keys are compared byte for byte.
func (n Node) Key(k string) Node {
	for _, p := range n.doc.Pairs(n.ref) {
		if text, ok := n.doc.Scalar(p.Key); ok && text == k {
			return at(n.doc, p.Value)
		}
	}
	return Node{}
}

// Size returns the number of items of a sequence or entries of a map, and
// 0 otherwise.
func (n Node) Size() int {
	switch n.Type() {
	case Sequence:
		return len(n.doc.Items(n.ref))
	case Map:
		return len(n.doc.Pairs(n.ref))
	}
	return 0
}

// Equal reports whether n and o refer to the same node. All Null nodes are
// equal.
func (n Node) Equal(o Node) bool {
	if n.ref == 0 || o.ref == 0 {
		return n.ref == o.ref
	}
	return n.ref == o.ref && n.doc == o.doc
}

func (n Node) Begin() NodeIterator {
	return NodeIterator{doc: n.doc, parent: n.ref}
}

func (n Node) End() NodeIterator {
	return NodeIterator{doc: n.doc, parent: n.ref, pos: n.Size()}
}

// Items yields the index and value of each item of a sequence.
func (n Node) Items() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i, r := range n.doc.Items(n.ref) {
			if !yield(i, at(n.doc, r)) {
				return
			}
		}
	}
}

// Entries yields the key and value of each entry of a map in document
// order.
func (n Node) Entries() iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for _, p := range n.doc.Pairs(n.ref) {
			if !yield(at(n.doc, p.Key), at(n.doc, p.Value)) {
				return
			}
		}
	}
}
