package engine

import (
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/yamlnav/document"
)

type Engine interface {
	Name() string
	// Parse parses the first document in src. Empty input yields a
	// document without a root.
	Parse(src []byte) (*document.Document, error)
	// ParseAll parses every document in src.
	ParseAll(src []byte) ([]*document.Document, error)
}

// Default is the engine used when none is specified.
var Default = Goccy()

var (
	mu sync.RWMutex
	d  = map[string]Engine{}
)

func Register(e Engine) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[e.Name()]
	if present {
		return fmt.Errorf("%s: %w", e.Name(), ErrEngineExists)
	}
	d[e.Name()] = e
	return nil
}

func init() {
	Register(Goccy())
	Register(YAMLv3())
}

func Lookup(name string) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := d[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrNoEngine, name, namesLocked())
	}
	return e, nil
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	res := make([]string, 0, len(d))
	for name := range d {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
