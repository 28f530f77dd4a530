package yamlnav

import (
	"fmt"
	"io"

	"github.com/signadot/yamlnav/engine"
)

type loadOpts struct {
	engine engine.Engine
}

type LoadOption func(*loadOpts)

// LoadEngine selects the engine which parses the source. The default is
// engine.Default.
func LoadEngine(e engine.Engine) LoadOption {
	return func(o *loadOpts) { o.engine = e }
}

func newLoadOpts(opts []LoadOption) *loadOpts {
	o := &loadOpts{engine: engine.Default}
	for _, f := range opts {
		f(o)
	}
	return o
}

// LoadString parses the first document in s and returns its root. The root
// of an empty document is Null.
func LoadString(s string, opts ...LoadOption) (Node, error) {
	return LoadBytes([]byte(s), opts...)
}

func LoadBytes(d []byte, opts ...LoadOption) (Node, error) {
	o := newLoadOpts(opts)
	doc, err := o.engine.Parse(d)
	if err != nil {
		return Node{}, err
	}
	return Root(doc), nil
}

// LoadStream reads r to the end and parses the first document.
func LoadStream(r io.Reader, opts ...LoadOption) (Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return Node{}, fmt.Errorf("could not read source: %w", err)
	}
	return LoadBytes(d, opts...)
}

// LoadAll returns the roots of every document in d.
func LoadAll(d []byte, opts ...LoadOption) ([]Node, error) {
	o := newLoadOpts(opts)
	docs, err := o.engine.ParseAll(d)
	if err != nil {
		return nil, err
	}
	res := make([]Node, len(docs))
	for i, doc := range docs {
		res[i] = Root(doc)
	}
	return res, nil
}
