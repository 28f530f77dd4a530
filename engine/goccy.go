package engine

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/yamlnav/debug"
	"github.com/signadot/yamlnav/document"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	ytoken "github.com/goccy/go-yaml/token"
)

type goccy struct{}

// Goccy returns the engine backed by github.com/goccy/go-yaml.
func Goccy() Engine {
	return goccy{}
}

func (goccy) Name() string {
	return "goccy"
}

func (e goccy) Parse(src []byte) (*document.Document, error) {
	docs, err := e.parse(src, false)
	if err != nil {
		return nil, err
	}
	return docs[0], nil
}

func (e goccy) ParseAll(src []byte) ([]*document.Document, error) {
	return e.parse(src, true)
}

func (e goccy) parse(src []byte, all bool) ([]*document.Document, error) {
	f, err := parser.ParseBytes(src, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		if invalidKey(err) {
			return e.fallback(src, all, err)
		}
		return nil, e.parseErr(src, err)
	}
	if debug.Parse() {
		debug.Logf("goccy: %d documents in %d bytes\n", len(f.Docs), len(src))
	}
	var res []*document.Document
	for _, yDoc := range f.Docs {
		c := &goccyConv{src: src, b: document.NewBuilder(e.Name(), src)}
		var body ast.Node
		if yDoc != nil {
			body = yDoc.Body
		}
		root, err := c.node(body, site{start: -1})
		if err != nil {
			return nil, err
		}
		c.b.SetRoot(root)
		res = append(res, c.b.Build())
		if !all {
			break
		}
	}
	if len(res) == 0 {
		res = append(res, document.NewBuilder(e.Name(), src).Build())
	}
	return res, nil
}

// invalidKey reports whether goccy rejected a collection used as a map
// key, which it does not support.
func invalidKey(err error) bool {
	return strings.Contains(err.Error(), "invalid key for this map")
}

// fallback parses src with yaml.v3, which accepts collection keys.
func (e goccy) fallback(src []byte, all bool, cause error) ([]*document.Document, error) {
	if debug.Parse() {
		debug.Logf("goccy: %v, parsing with yaml.v3\n", cause)
	}
	if all {
		return YAMLv3().ParseAll(src)
	}
	doc, err := YAMLv3().Parse(src)
	if err != nil {
		return nil, err
	}
	return []*document.Document{doc}, nil
}

type tokenError interface {
	GetToken() *ytoken.Token
}

type messageError interface {
	GetMessage() string
}

func (e goccy) parseErr(src []byte, err error) error {
	pe := &ParseError{Engine: e.Name(), Msg: err.Error(), Err: err}
	var te tokenError
	if errors.As(err, &te) {
		if tk := te.GetToken(); tk != nil && tk.Position != nil {
			pe.Mark = markAt(src, tk.Position.Line, tk.Position.Column)
		}
	}
	var me messageError
	if errors.As(err, &me) && me.GetMessage() != "" {
		pe.Msg = me.GetMessage()
	}
	return pe
}

// site carries node properties (anchor, tag) down to the node they apply
// to. start is -1 when the node has no properties.
type site struct {
	start  int
	anchor string
}

type goccyConv struct {
	src  []byte
	b    *document.Builder
	last int
}

func (c *goccyConv) at(tk *ytoken.Token) int {
	if tk == nil || tk.Position == nil {
		return -1
	}
	off := c.b.At(tk.Position.Line, tk.Position.Column)
	c.last = max(c.last, off)
	return off
}

// startOf returns the offset at which n starts in the source.
func (c *goccyConv) startOf(n ast.Node) int {
	switch n := n.(type) {
	case nil:
		return -1
	case *ast.MappingValueNode:
		return c.startOf(n.Key)
	case *ast.MappingNode:
		if !n.IsFlowStyle && len(n.Values) > 0 {
			return c.startOf(n.Values[0])
		}
	case *ast.SequenceNode:
		if off := c.at(n.GetToken()); off >= 0 || len(n.Values) == 0 {
			return off
		}
		return c.startOf(n.Values[0])
	}
	return c.at(n.GetToken())
}

func (c *goccyConv) fail(off int, err error) error {
	return &ParseError{
		Engine: goccy{}.Name(),
		Mark:   offsetMark(c.src, off),
		Msg:    err.Error(),
		Err:    err,
	}
}

func first(offs ...int) int {
	for _, off := range offs {
		if off >= 0 {
			return off
		}
	}
	return 0
}

func (c *goccyConv) node(n ast.Node, s site) (document.Ref, error) {
	switch n := n.(type) {
	case nil:
		if s.start < 0 && s.anchor == "" {
			return 0, nil
		}
		return c.scalar("", first(s.start, c.last), s), nil
	case *ast.DocumentNode:
		return c.node(n.Body, s)
	case *ast.CommentGroupNode, *ast.CommentNode:
		return c.node(nil, s)
	case *ast.TagNode:
		if s.start < 0 {
			s.start = c.at(n.GetToken())
		}
		return c.node(n.Value, s)
	case *ast.AnchorNode:
		if s.start < 0 {
			s.start = c.at(n.GetToken())
		}
		if n.Name != nil && n.Name.GetToken() != nil {
			s.anchor = n.Name.GetToken().Value
		}
		if n.Value == nil {
			return c.scalar("", first(s.start, c.last), s), nil
		}
		return c.node(n.Value, s)
	case *ast.AliasNode:
		name := goccyAliasName(n)
		r, err := c.b.Alias(name)
		if err != nil {
			return 0, c.fail(first(c.at(n.GetToken()), c.last), err)
		}
		return r, nil
	case *ast.MappingKeyNode:
		if s.start < 0 {
			s.start = c.at(n.GetToken())
		}
		return c.node(n.Value, s)
	case *ast.MappingNode:
		start := first(s.start, c.startOf(n), c.last)
		m := c.b.Mapping(start)
		c.anchor(m, s)
		for _, mv := range n.Values {
			if err := c.pair(m, mv); err != nil {
				return 0, err
			}
		}
		return m, nil
	case *ast.MappingValueNode:
		m := c.b.Mapping(first(s.start, c.startOf(n), c.last))
		c.anchor(m, s)
		if err := c.pair(m, n); err != nil {
			return 0, err
		}
		return m, nil
	case *ast.SequenceNode:
		seq := c.b.Sequence(first(s.start, c.startOf(n), c.last))
		c.anchor(seq, s)
		for _, v := range n.Values {
			r, err := c.child(seq, v)
			if err != nil {
				return 0, err
			}
			if err := c.b.Append(seq, r); err != nil {
				return 0, c.fail(c.last, err)
			}
		}
		return seq, nil
	case *ast.StringNode:
		return c.scalar(n.Value, first(s.start, c.at(n.GetToken()), c.last), s), nil
	case *ast.LiteralNode:
		text := ""
		if n.Value != nil {
			text = n.Value.Value
		}
		return c.scalar(text, first(s.start, c.at(n.GetToken()), c.last), s), nil
	case *ast.NullNode:
		tk := n.GetToken()
		off := c.at(tk)
		text := ""
		if tk != nil && off >= 0 && bytes.HasPrefix(c.src[off:], []byte(tk.Value)) {
			text = tk.Value
		}
		return c.scalar(text, first(s.start, off, c.last), s), nil
	default:
		tk := n.GetToken()
		if tk == nil {
			return 0, c.fail(c.last, fmt.Errorf("%w: %s without token", ErrParse, n.Type()))
		}
		return c.scalar(tk.Value, first(s.start, c.at(tk), c.last), s), nil
	}
}

func (c *goccyConv) scalar(text string, start int, s site) document.Ref {
	r := c.b.Scalar(text, start)
	c.anchor(r, s)
	return r
}

func (c *goccyConv) anchor(r document.Ref, s site) {
	if s.anchor != "" {
		c.b.Anchor(s.anchor, r)
	}
}

func (c *goccyConv) pair(m document.Ref, mv *ast.MappingValueNode) error {
	if mv == nil {
		return nil
	}
	k, err := c.child(m, mv.Key)
	if err != nil {
		return err
	}
	if k == 0 {
		k = c.scalar("", c.last, site{start: -1})
	}
	v, err := c.child(m, mv.Value)
	if err != nil {
		return err
	}
	if v == 0 {
		v = c.scalar("", c.last, site{start: -1})
	}
	if err := c.b.Put(m, k, v); err != nil {
		return c.fail(c.last, err)
	}
	return nil
}

// child converts n as a child of parent. Aliases extend the parent's text
// since their own text is not part of the node they resolve to.
func (c *goccyConv) child(parent document.Ref, n ast.Node) (document.Ref, error) {
	r, err := c.node(n, site{start: -1})
	if err != nil {
		return 0, err
	}
	if al, ok := n.(*ast.AliasNode); ok {
		if off := c.at(al.GetToken()); off >= 0 {
			c.b.Extend(parent, off+1+len(goccyAliasName(al)))
		}
	}
	return r, nil
}

func goccyAliasName(n *ast.AliasNode) string {
	if n.Value == nil || n.Value.GetToken() == nil {
		return ""
	}
	return n.Value.GetToken().Value
}
