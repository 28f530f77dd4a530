package yamlnav

import "github.com/signadot/yamlnav/document"

// NodeIterator is a position within the children of a node. Positions
// outside [0, Size()) are allowed and dereference to the empty element.
type NodeIterator struct {
	doc    *document.Document
	parent document.Ref
	pos    int
}

// IteratorElement is the child at an iterator position. For a sequence
// the embedded Node is the item and First and Second are Null. For a map
// First and Second are the key and value and the embedded Node is Null.
type IteratorElement struct {
	Node
	First  Node
	Second Node
}

// Pair returns the key and value of a map entry.
func (e IteratorElement) Pair() (key, value Node) {
	return e.First, e.Second
}

// IsEmpty reports whether e addresses no child.
func (e IteratorElement) IsEmpty() bool {
	return e.Node.IsNull() && e.First.IsNull() && e.Second.IsNull()
}

// Parent returns the node whose children it ranges over.
func (it NodeIterator) Parent() Node {
	return at(it.doc, it.parent)
}

func (it NodeIterator) Pos() int {
	return it.pos
}

func (it NodeIterator) Next() NodeIterator {
	return it.Add(1)
}

func (it NodeIterator) Prev() NodeIterator {
	return it.Add(-1)
}

func (it NodeIterator) Add(n int) NodeIterator {
	it.pos += n
	return it
}

func (it NodeIterator) Sub(n int) NodeIterator {
	it.pos -= n
	return it
}

// Distance returns it.Pos() - o.Pos().
func (it NodeIterator) Distance(o NodeIterator) int {
	return it.pos - o.pos
}

// Equal reports whether it and o have the same parent and position.
func (it NodeIterator) Equal(o NodeIterator) bool {
	return it.pos == o.pos && it.Parent().Equal(o.Parent())
}

// Elem returns the child at the iterator's position.
func (it NodeIterator) Elem() IteratorElement {
	switch it.doc.Kind(it.parent) {
	case document.SequenceNode:
		items := it.doc.Items(it.parent)
		if it.pos < 0 || it.pos >= len(items) {
			return IteratorElement{}
		}
		return IteratorElement{Node: at(it.doc, items[it.pos])}
	case document.MappingNode:
		pairs := it.doc.Pairs(it.parent)
		if it.pos < 0 || it.pos >= len(pairs) {
			return IteratorElement{}
		}
		p := pairs[it.pos]
		return IteratorElement{First: at(it.doc, p.Key), Second: at(it.doc, p.Value)}
	}
	return IteratorElement{}
}
