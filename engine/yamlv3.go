package engine

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"

	"github.com/signadot/yamlnav/debug"
	"github.com/signadot/yamlnav/document"

	"gopkg.in/yaml.v3"
)

type yamlV3 struct{}

// YAMLv3 returns the engine backed by gopkg.in/yaml.v3.
func YAMLv3() Engine {
	return yamlV3{}
}

func (yamlV3) Name() string {
	return "yaml.v3"
}

func (e yamlV3) Parse(src []byte) (*document.Document, error) {
	docs, err := e.parse(src, false)
	if err != nil {
		return nil, err
	}
	return docs[0], nil
}

func (e yamlV3) ParseAll(src []byte) ([]*document.Document, error) {
	return e.parse(src, true)
}

func (e yamlV3) parse(src []byte, all bool) ([]*document.Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	var res []*document.Document
	for {
		var n yaml.Node
		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, e.parseErr(src, err)
		}
		c := &yamlV3Conv{
			src:  src,
			b:    document.NewBuilder(e.Name(), src),
			seen: map[*yaml.Node]document.Ref{},
		}
		root := document.Ref(0)
		if len(n.Content) != 0 {
			root, err = c.node(n.Content[0])
			if err != nil {
				return nil, err
			}
		}
		c.b.SetRoot(root)
		res = append(res, c.b.Build())
		if !all {
			break
		}
	}
	if debug.Parse() {
		debug.Logf("yaml.v3: %d documents in %d bytes\n", len(res), len(src))
	}
	if len(res) == 0 {
		res = append(res, document.NewBuilder(e.Name(), src).Build())
	}
	return res, nil
}

var yamlV3Line = regexp.MustCompile(`line (\d+)`)

func (e yamlV3) parseErr(src []byte, err error) error {
	pe := &ParseError{Engine: e.Name(), Msg: err.Error(), Err: err}
	if m := yamlV3Line.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			pe.Mark = markAt(src, line, 1)
		}
	}
	return pe
}

type yamlV3Conv struct {
	src  []byte
	b    *document.Builder
	seen map[*yaml.Node]document.Ref
}

func (c *yamlV3Conv) at(n *yaml.Node) int {
	return c.b.At(n.Line, n.Column)
}

func (c *yamlV3Conv) fail(n *yaml.Node, err error) error {
	return &ParseError{
		Engine: yamlV3{}.Name(),
		Mark:   offsetMark(c.src, c.at(n)),
		Msg:    err.Error(),
		Err:    err,
	}
}

func (c *yamlV3Conv) node(n *yaml.Node) (document.Ref, error) {
	if r, ok := c.seen[n]; ok {
		return r, nil
	}
	var r document.Ref
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return 0, nil
		}
		return c.node(n.Content[0])
	case yaml.AliasNode:
		if n.Alias != nil {
			if r, ok := c.seen[n.Alias]; ok {
				return r, nil
			}
		}
		r, err := c.b.Alias(n.Value)
		if err != nil {
			return 0, c.fail(n, err)
		}
		return r, nil
	case yaml.ScalarNode:
		r = c.b.Scalar(n.Value, c.at(n))
	case yaml.SequenceNode:
		r = c.b.Sequence(c.at(n))
	case yaml.MappingNode:
		r = c.b.Mapping(c.at(n))
	default:
		return 0, c.fail(n, errors.New("unknown node kind"))
	}
	c.seen[n] = r
	if n.Anchor != "" {
		c.b.Anchor(n.Anchor, r)
	}
	switch n.Kind {
	case yaml.SequenceNode:
		for _, item := range n.Content {
			ir, err := c.child(r, item)
			if err != nil {
				return 0, err
			}
			if err := c.b.Append(r, ir); err != nil {
				return 0, c.fail(item, err)
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := c.child(r, n.Content[i])
			if err != nil {
				return 0, err
			}
			v, err := c.child(r, n.Content[i+1])
			if err != nil {
				return 0, err
			}
			if err := c.b.Put(r, k, v); err != nil {
				return 0, c.fail(n.Content[i], err)
			}
		}
	}
	return r, nil
}

func (c *yamlV3Conv) child(parent document.Ref, n *yaml.Node) (document.Ref, error) {
	r, err := c.node(n)
	if err != nil {
		return 0, err
	}
	if n.Kind == yaml.AliasNode {
		c.b.Extend(parent, c.at(n)+1+len(n.Value))
	}
	return r, nil
}
