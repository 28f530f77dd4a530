package libdiff

import (
	"github.com/signadot/yamlnav"
)

// Diff returns the changes which turn from into to, in document order.
// Maps are compared by scalar key, entries with other keys are ignored.
// Sequences are aligned on item summaries, see DiffSequence.
func Diff(from, to yamlnav.Node) []Change {
	d := &differ{}
	d.diff("$", from, to)
	return d.res
}

type differ struct {
	res    []Change
	active [][2]yamlnav.Node
}

func (d *differ) diff(path string, from, to yamlnav.Node) {
	switch {
	case from.IsNull() && to.IsNull():
		return
	case from.IsNull(), to.IsNull(), from.Type() != to.Type():
		d.res = append(d.res, makeChange(path, from, to))
		return
	}
	switch from.Type() {
	case yamlnav.Scalar:
		if from.Text() != to.Text() {
			d.res = append(d.res, makeChange(path, from, to))
		}
		return
	}
	for _, pair := range d.active {
		if pair[0].Equal(from) && pair[1].Equal(to) {
			return
		}
	}
	d.active = append(d.active, [2]yamlnav.Node{from, to})
	defer func() { d.active = d.active[:len(d.active)-1] }()
	if from.Type() == yamlnav.Sequence {
		d.sequence(path, from, to)
		return
	}
	d.mapping(path, from, to)
}

func (d *differ) mapping(path string, from, to yamlnav.Node) {
	seen := map[string]bool{}
	for k, fv := range from.Entries() {
		key, ok := k.Scalar()
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		d.diff(path+"."+yamlnav.FieldPath(key), fv, to.Key(key))
	}
	for k, tv := range to.Entries() {
		key, ok := k.Scalar()
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		d.res = append(d.res, makeChange(path+"."+yamlnav.FieldPath(key), yamlnav.Node{}, tv))
	}
}
