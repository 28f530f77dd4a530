package yamlnav

import "github.com/signadot/yamlnav/document"

// Interface returns n as plain Go values: nil for Null, string for
// scalars, []any for sequences and map[string]any for maps. Entries whose
// key is not a scalar are left out and the first of duplicate keys wins.
// A node reached again through an alias of one of its ancestors is nil.
func (n Node) Interface() any {
	return n.iface(map[document.Ref]bool{})
}

func (n Node) iface(active map[document.Ref]bool) any {
	if active[n.ref] {
		return nil
	}
	switch n.Type() {
	case Scalar:
		return n.Text()
	case Sequence:
		active[n.ref] = true
		defer delete(active, n.ref)
		res := make([]any, 0, n.Size())
		for _, y := range n.Items() {
			res = append(res, y.iface(active))
		}
		return res
	case Map:
		active[n.ref] = true
		defer delete(active, n.ref)
		res := make(map[string]any, n.Size())
		for k, v := range n.Entries() {
			text, ok := k.Scalar()
			if !ok {
				continue
			}
			if _, present := res[text]; present {
				continue
			}
			res[text] = v.iface(active)
		}
		return res
	}
	return nil
}
