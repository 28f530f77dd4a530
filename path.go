package yamlnav

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/yamlnav/debug"
)

// Path is a parsed path such as "$.a[0].b". Paths start at "$", the node
// they are applied to. ".f" or ".'f'" selects a map value by key, "[i]"
// selects a sequence item, "[*]" selects every item and ".." selects a
// node and all its descendants.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + FieldPath(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// FieldPath returns the path segment, without the leading '.', which
// selects the map key f.
func FieldPath(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	return "'" + strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(f) + "'"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at path, or Null if there is none. Only
// malformed paths and paths with "[*]" or ".." result in an error.
func (n Node) GetPath(path string) (Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Node{}, err
	}
	res := n
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return Node{}, fmt.Errorf("%w: any index in get %q", ErrPath, path)
		case x.Subtree:
			return Node{}, fmt.Errorf("%w: recurse .. in get %q", ErrPath, path)
		case x.Index != nil:
			res = res.Index(*x.Index)
		case x.Field != nil:
			res = res.Key(*x.Field)
		}
	}
	return res, nil
}

// Get is like GetPath but returns Null for bad paths.
func (n Node) Get(path string) Node {
	res, err := n.GetPath(path)
	if err != nil && debug.Query() {
		debug.Logf("get: %v\n", err)
	}
	return res
}

// Query returns every node selected by path in document order.
func (n Node) Query(path string) ([]Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := n.query(nil, p)
	if debug.Query() {
		debug.Logf("query %s: %d nodes\n", p, len(res))
	}
	return res, nil
}

func (n Node) query(dst []Node, p *Path) []Node {
	if n.IsNull() {
		return dst
	}
	switch {
	case p == nil:
		return append(dst, n)
	case p.Subtree:
		Walk(n, func(_ string, y Node, isPost bool) (bool, error) {
			if !isPost {
				dst = y.query(dst, p.Next)
			}
			return true, nil
		})
		return dst
	case p.IndexAll:
		for _, y := range n.Items() {
			dst = y.query(dst, p.Next)
		}
		return dst
	case p.Index != nil:
		return n.Index(*p.Index).query(dst, p.Next)
	case p.Field != nil:
		return n.Key(*p.Field).query(dst, p.Next)
	}
	return n.query(dst, p.Next)
}
