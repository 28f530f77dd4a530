package document

import (
	"fmt"

	"github.com/signadot/yamlnav/debug"
	"github.com/signadot/yamlnav/token"
)

// Builder assembles a Document. Engines add nodes in document order,
// link them into collections and finally call Build. A Builder must not be
// used after Build.
type Builder struct {
	doc     *Document
	anchors map[string]Ref
}

func NewBuilder(engine string, src []byte) *Builder {
	return &Builder{
		doc: &Document{
			engine: engine,
			pos:    token.NewPosDoc(src),
		},
		anchors: map[string]Ref{},
	}
}

// At returns the byte offset of a 1-based line and column, as reported by
// engines.
func (b *Builder) At(line, col int) int {
	return b.doc.pos.Offset(line-1, col-1)
}

func (b *Builder) add(n node) Ref {
	n.start = max(0, min(n.start, len(b.doc.pos.Bytes())))
	n.reach = n.start
	b.doc.nodes = append(b.doc.nodes, n)
	return Ref(len(b.doc.nodes))
}

func (b *Builder) Scalar(text string, start int) Ref {
	return b.add(node{kind: ScalarNode, text: text, start: start})
}

func (b *Builder) Sequence(start int) Ref {
	return b.add(node{kind: SequenceNode, start: start})
}

func (b *Builder) Mapping(start int) Ref {
	return b.add(node{kind: MappingNode, start: start})
}

func (b *Builder) Append(seq, item Ref) error {
	n := b.doc.node(seq)
	if n == nil || n.kind != SequenceNode {
		return fmt.Errorf("%w: %d is not a sequence", ErrRef, seq)
	}
	if b.doc.node(item) == nil {
		return fmt.Errorf("%w: item %d", ErrRef, item)
	}
	n.items = append(n.items, item)
	return nil
}

func (b *Builder) Put(m, key, value Ref) error {
	n := b.doc.node(m)
	if n == nil || n.kind != MappingNode {
		return fmt.Errorf("%w: %d is not a mapping", ErrRef, m)
	}
	if b.doc.node(key) == nil || b.doc.node(value) == nil {
		return fmt.Errorf("%w: pair (%d, %d)", ErrRef, key, value)
	}
	n.pairs = append(n.pairs, Pair{Key: key, Value: value})
	return nil
}

// Extend records that the text of r reaches at least to off. Engines use
// it for aliases, whose text is not part of the node they resolve to.
func (b *Builder) Extend(r Ref, off int) {
	n := b.doc.node(r)
	if n == nil {
		return
	}
	n.reach = max(n.reach, off)
}

// Anchor associates name with r. A later anchor of the same name replaces
// the earlier one for subsequent aliases.
func (b *Builder) Anchor(name string, r Ref) {
	b.anchors[name] = r
}

// Alias returns the node anchored as name.
func (b *Builder) Alias(name string) (Ref, error) {
	r, ok := b.anchors[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUndefined, name)
	}
	return r, nil
}

func (b *Builder) SetRoot(r Ref) {
	b.doc.root = r
}

// Build computes the end of every node and returns the finished Document.
func (b *Builder) Build() *Document {
	d := b.doc
	src := d.pos.Bytes()
	state := make([]uint8, len(d.nodes))
	var end func(r Ref) int
	end = func(r Ref) int {
		n := &d.nodes[r-1]
		switch state[r-1] {
		case 1:
			// self-referencing anchor
			return n.start
		case 2:
			return n.end
		}
		state[r-1] = 1
		switch {
		case n.kind == ScalarNode:
			n.end = token.ScalarEnd(src, n.start, n.text)
		case token.IsFlow(src, n.start):
			e, err := token.FlowEnd(src, n.start)
			if err != nil && debug.Build() {
				debug.Logf("build: %v\n", err)
			}
			n.end = e
		default:
			e := n.reach
			for _, item := range n.items {
				e = max(e, end(item))
			}
			for _, p := range n.pairs {
				e = max(e, end(p.Key), end(p.Value))
			}
			n.end = e
		}
		n.end = max(n.end, n.start)
		state[r-1] = 2
		return n.end
	}
	for i := range d.nodes {
		end(Ref(i + 1))
	}
	if debug.Build() {
		debug.Logf("build: %s document with %d nodes, root %d\n", d.engine, len(d.nodes), d.root)
	}
	b.doc = nil
	return d
}
