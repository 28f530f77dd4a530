package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/debug"
	"github.com/signadot/yamlnav/document"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || len(doc.roots) == 0 {
		return nil, nil
	}
	pos := params.Position
	h, ok := nodeAt(doc.roots, int(pos.Line), int(pos.Character))
	if !ok {
		return nil, nil
	}
	if debug.LSP() {
		debug.Logf("hover %d:%d %s\n", pos.Line, pos.Character, h.path)
	}
	start, end := h.node.StartMark(), h.node.EndMark()
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(h),
		},
		Range: &protocol.Range{
			Start: position(start),
			End:   position(end),
		},
	}, nil
}

// hit is a node found under the cursor.
type hit struct {
	doc  int
	path string
	node yamlnav.Node
	key  bool
}

// nodeAt finds the deepest node whose extent contains the 0-based line
// and column. Map keys are found as well as values.
func nodeAt(roots []yamlnav.Node, line, col int) (hit, bool) {
	var (
		res   hit
		found bool
	)
	for i, root := range roots {
		yamlnav.Walk(root, func(path string, n yamlnav.Node, isPost bool) (bool, error) {
			if isPost || !contains(n, line, col) {
				return false, nil
			}
			res = hit{doc: i, path: path, node: n}
			found = true
			if !n.IsMap() {
				return true, nil
			}
			for k := range n.Entries() {
				if !contains(k, line, col) {
					continue
				}
				seg := "[?]"
				if text, ok := k.Scalar(); ok {
					seg = "." + yamlnav.FieldPath(text)
				}
				res = hit{doc: i, path: path + seg, node: k, key: true}
				return false, nil
			}
			return true, nil
		})
		if found {
			break
		}
	}
	return res, found
}

func contains(n yamlnav.Node, line, col int) bool {
	start, end := n.StartMark(), n.EndMark()
	if start.Offset == end.Offset {
		return false
	}
	if line < start.Line || (line == start.Line && col < start.Column) {
		return false
	}
	return line < end.Line || (line == end.Line && col < end.Column)
}

func hoverText(h hit) string {
	var parts []string
	path := fmt.Sprintf("**Path:** `%s`", h.path)
	if h.doc > 0 {
		path += fmt.Sprintf(" (document %d)", h.doc+1)
	}
	if h.key {
		path += " (key)"
	}
	parts = append(parts, path)
	n := h.node
	switch n.Type() {
	case yamlnav.Scalar:
		text := n.Text()
		if len(text) > 50 {
			text = text[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Type:** %s `%q`", n.Type(), text))
	case yamlnav.Sequence:
		parts = append(parts, fmt.Sprintf("**Type:** %s with %d items", n.Type(), n.Size()))
	case yamlnav.Map:
		parts = append(parts, fmt.Sprintf("**Type:** %s with %d entries", n.Type(), n.Size()))
	}
	parts = append(parts, fmt.Sprintf("**Range:** %s-%s", n.StartMark(), n.EndMark()))
	return strings.Join(parts, "\n\n")
}

func position(m document.Mark) protocol.Position {
	return protocol.Position{Line: uint32(m.Line), Character: uint32(m.Column)}
}
