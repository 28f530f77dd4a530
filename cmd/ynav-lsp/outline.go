package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/signadot/yamlnav"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	var res []interface{}
	for _, root := range doc.roots {
		for _, sym := range symbols(root) {
			res = append(res, sym)
		}
	}
	return res, nil
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return foldingRanges(doc.roots), nil
}

// symbols outlines the entries of a map and the collection items of a
// sequence. A child whose text lies before its parent's key or previous
// item is an alias of an earlier node and gets no children.
func symbols(n yamlnav.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	switch n.Type() {
	case yamlnav.Map:
		for k, v := range n.Entries() {
			name, ok := k.Scalar()
			if !ok {
				name = "?"
			}
			sel := nodeRange(k)
			sym := protocol.DocumentSymbol{
				Name:           name,
				Detail:         detail(v),
				Kind:           symbolKind(v),
				Range:          sel,
				SelectionRange: sel,
			}
			if v.StartMark().Offset >= k.EndMark().Offset && v.EndMark().Offset > k.EndMark().Offset {
				sym.Range.End = position(v.EndMark())
				sym.Children = symbols(v)
			}
			res = append(res, sym)
		}
	case yamlnav.Sequence:
		prev := n.StartMark().Offset
		for i, v := range n.Items() {
			inPlace := v.StartMark().Offset > prev
			prev = max(prev, v.EndMark().Offset)
			if !v.IsMap() && !v.IsSequence() {
				continue
			}
			r := nodeRange(v)
			sym := protocol.DocumentSymbol{
				Name:           "[" + strconv.Itoa(i) + "]",
				Detail:         detail(v),
				Kind:           symbolKind(v),
				Range:          r,
				SelectionRange: r,
			}
			if inPlace {
				sym.Children = symbols(v)
			}
			res = append(res, sym)
		}
	}
	return res
}

func nodeRange(n yamlnav.Node) protocol.Range {
	return protocol.Range{Start: position(n.StartMark()), End: position(n.EndMark())}
}

func symbolKind(n yamlnav.Node) protocol.SymbolKind {
	switch n.Type() {
	case yamlnav.Map:
		return protocol.SymbolKindObject
	case yamlnav.Sequence:
		return protocol.SymbolKindArray
	case yamlnav.Scalar:
		return protocol.SymbolKindString
	default:
		return protocol.SymbolKindNull
	}
}

func detail(n yamlnav.Node) string {
	switch n.Type() {
	case yamlnav.Map:
		return fmt.Sprintf("%d entries", n.Size())
	case yamlnav.Sequence:
		return fmt.Sprintf("%d items", n.Size())
	default:
		return n.Text()
	}
}

// foldingRanges returns a range for every collection spanning more than
// one line, ordered by start line.
func foldingRanges(roots []yamlnav.Node) []protocol.FoldingRange {
	seen := map[[2]int]bool{}
	var res []protocol.FoldingRange
	for _, root := range roots {
		yamlnav.Walk(root, func(_ string, n yamlnav.Node, isPost bool) (bool, error) {
			if isPost || n.IsScalar() {
				return false, nil
			}
			start, end := n.StartMark(), n.EndMark()
			last := end.Line
			if end.Column == 0 && last > start.Line {
				last--
			}
			if last <= start.Line {
				return true, nil
			}
			if k := [2]int{start.Line, last}; !seen[k] {
				seen[k] = true
				res = append(res, protocol.FoldingRange{StartLine: uint32(start.Line), EndLine: uint32(last)})
			}
			return true, nil
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].StartLine < res[j].StartLine
	})
	return res
}
