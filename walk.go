package yamlnav

import (
	"strconv"

	"github.com/signadot/yamlnav/document"
)

// WalkFunc is called by Walk before (isPost false) and after (isPost true)
// the children of n are visited. Returning false from the first call skips
// the children of n.
type WalkFunc func(path string, n Node, isPost bool) (bool, error)

// Walk visits n and its descendants depth first. Paths are relative to n,
// which has path "$". Map values whose key is not a scalar are given the
// segment "[?i]" for the i'th entry, which no Path selects.
//
// A node reached again through an alias of one of its ancestors is visited
// but not descended into.
func Walk(n Node, f WalkFunc) error {
	if n.IsNull() {
		return nil
	}
	w := &walker{f: f, active: map[document.Ref]bool{}}
	return w.walk("$", n)
}

type walker struct {
	f      WalkFunc
	active map[document.Ref]bool
}

func (w *walker) walk(path string, n Node) error {
	dive, err := w.f(path, n, false)
	if err != nil {
		return err
	}
	if dive && !w.active[n.ref] {
		w.active[n.ref] = true
		switch n.Type() {
		case Sequence:
			for i, y := range n.Items() {
				if err := w.walk(path+"["+strconv.Itoa(i)+"]", y); err != nil {
					return err
				}
			}
		case Map:
			i := 0
			for k, v := range n.Entries() {
				seg := "[?" + strconv.Itoa(i) + "]"
				if text, ok := k.Scalar(); ok {
					seg = "." + FieldPath(text)
				}
				i++
				if err := w.walk(path+seg, v); err != nil {
					return err
				}
			}
		}
		delete(w.active, n.ref)
	}
	_, err = w.f(path, n, true)
	return err
}
