package eval

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/signadot/yamlnav"
)

// Func is a function available to expressions. Fn is called with the root
// of the document the expression is evaluated against. Types are expr
// function signatures such as new(func(string) any).
type Func struct {
	Name  string
	Fn    func(root yamlnav.Node, params ...any) (any, error)
	Types []any
}

var (
	mu sync.RWMutex
	d  = map[string]*Func{}
)

func Register(f *Func) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[f.Name]
	if present {
		return fmt.Errorf("%s: %w", f.Name, ErrFuncExists)
	}
	d[f.Name] = f
	return nil
}

func init() {
	for _, f := range builtins() {
		Register(f)
	}
}

func Lookup(name string) *Func {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Funcs returns the registered functions ordered by name.
func Funcs() []*Func {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]*Func, 0, len(d))
	for _, f := range d {
		res = append(res, f)
	}
	slices.SortFunc(res, func(a, b *Func) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}
