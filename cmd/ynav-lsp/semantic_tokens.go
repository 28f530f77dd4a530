package main

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/signadot/yamlnav"

	"go.lsp.dev/protocol"
)

// tokenTypes is the legend; token type values index into it.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenKeyword,
}

const (
	propertyToken uint32 = iota
	stringToken
	numberToken
	keywordToken
)

type tokenInfo struct {
	offset    int
	line      int
	character int
	length    int
	typ       uint32
}

// scalarToken classifies a scalar by its resolved text. Scalars spanning
// lines are not tokenized.
func scalarToken(n yamlnav.Node, key bool) (tokenInfo, bool) {
	start, end := n.StartMark(), n.EndMark()
	if !n.IsScalar() || start.Line != end.Line || end.Column <= start.Column {
		return tokenInfo{}, false
	}
	ti := tokenInfo{
		offset:    start.Offset,
		line:      start.Line,
		character: start.Column,
		length:    end.Column - start.Column,
		typ:       stringToken,
	}
	text := n.Text()
	switch {
	case key:
		ti.typ = propertyToken
	case end.Offset-start.Offset != len(text):
		// quoted
	case text == "true" || text == "false" || text == "null" || text == "~":
		ti.typ = keywordToken
	default:
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			ti.typ = numberToken
		}
	}
	return ti, true
}

func collectSemanticTokens(roots []yamlnav.Node) []tokenInfo {
	seen := map[int]bool{}
	var res []tokenInfo
	add := func(n yamlnav.Node, key bool) {
		ti, ok := scalarToken(n, key)
		if !ok || seen[ti.offset] {
			return
		}
		seen[ti.offset] = true
		res = append(res, ti)
	}
	for _, root := range roots {
		yamlnav.Walk(root, func(_ string, n yamlnav.Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			switch n.Type() {
			case yamlnav.Scalar:
				add(n, false)
			case yamlnav.Map:
				for k := range n.Entries() {
					add(k, true)
				}
			}
			return true, nil
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].offset < res[j].offset
	})
	return res
}

// encodeTokens produces the relative encoding of tokens on lines in
// [first, last].
func encodeTokens(tokens []tokenInfo, first, last int) []uint32 {
	data := []uint32{}
	prevLine, prevChar := 0, 0
	for _, ti := range tokens {
		if ti.line < first || ti.line > last {
			continue
		}
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		data = append(data, uint32(deltaLine), uint32(deltaChar), uint32(ti.length), ti.typ, 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || len(doc.roots) == 0 {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	tokens := collectSemanticTokens(doc.roots)
	return &protocol.SemanticTokens{
		Data: encodeTokens(tokens, 0, math.MaxInt),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || len(doc.roots) == 0 {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	tokens := collectSemanticTokens(doc.roots)
	r := params.Range
	return &protocol.SemanticTokens{
		Data: encodeTokens(tokens, int(r.Start.Line), int(r.End.Line)),
	}, nil
}
