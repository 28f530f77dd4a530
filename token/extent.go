package token

import (
	"bytes"
	"fmt"
)

// SkipProperties returns the offset of the first byte after any anchors
// (&a) and tags (!t) beginning at off, together with the blanks
// separating them from the value on the same line.
func SkipProperties(d []byte, off int) int {
	for off < len(d) && (d[off] == '&' || d[off] == '!') {
		for off < len(d) && !isWhite(d[off]) {
			off++
		}
		for off < len(d) && isBlank(d[off]) {
			off++
		}
	}
	return off
}

// IsFlow reports whether the node starting at off is a flow collection.
func IsFlow(d []byte, off int) bool {
	off = SkipProperties(d, off)
	return off < len(d) && (d[off] == '[' || d[off] == '{')
}

// ScalarEnd returns the offset just past the scalar starting at off whose
// resolved text is text.
func ScalarEnd(d []byte, off int, text string) int {
	off = SkipProperties(d, off)
	if off >= len(d) {
		return len(d)
	}
	switch d[off] {
	case '"', '\'':
		end, err := QuotedEnd(d, off)
		if err != nil {
			return len(d)
		}
		return end
	case '|', '>':
		return BlockScalarEnd(d, off)
	}
	return PlainEnd(d, off, text)
}

// QuotedEnd returns the offset just past the closing quote of the single
// or double quoted scalar starting at off.
func QuotedEnd(d []byte, off int) (int, error) {
	q := d[off]
	i := off + 1
	for i < len(d) {
		c := d[i]
		switch {
		case q == '"' && c == '\\':
			i += 2
			continue
		case c == q && q == '\'' && i+1 < len(d) && d[i+1] == '\'':
			i += 2
			continue
		case c == q:
			return i + 1, nil
		}
		i++
	}
	return len(d), fmt.Errorf("%w quoted scalar at offset %d", ErrUnterminated, off)
}

// BlockScalarEnd returns the offset just past the last content line of the
// literal (|) or folded (>) scalar whose indicator is at off. The first
// non-blank line after the indicator fixes the content indentation, which
// must be deeper than the indicator's line; interior blank lines belong to
// the scalar, trailing ones do not.
func BlockScalarEnd(d []byte, off int) int {
	indent := lineIndent(d, off)
	i := bytes.IndexByte(d[off:], '\n')
	if i < 0 {
		return len(d)
	}
	end := off + i + 1
	pos := end
	content := -1
	for pos < len(d) {
		line, next := lineAt(d, pos)
		if len(bytes.TrimSpace(line)) == 0 {
			pos = next
			continue
		}
		sp := leadingSpaces(line)
		if content < 0 {
			if sp <= indent {
				break
			}
			content = sp
		}
		if sp < content {
			break
		}
		end = next
		pos = next
	}
	return end
}

// PlainEnd returns the offset just past the plain scalar starting at off.
// The resolved text is matched against the source; a run of white space
// in the source, line breaks included, matches a run of spaces or line
// feeds in the text, which is how multi-line plain scalars fold.
func PlainEnd(d []byte, off int, text string) int {
	i, j := off, 0
	for j < len(text) && i < len(d) {
		if d[i] == text[j] {
			i++
			j++
			continue
		}
		if isWhite(d[i]) && (text[j] == ' ' || text[j] == '\n') {
			for i < len(d) && isWhite(d[i]) {
				i++
			}
			for j < len(text) && (text[j] == ' ' || text[j] == '\n') {
				j++
			}
			continue
		}
		break
	}
	return i
}

// FlowEnd returns the offset just past the bracket closing the flow
// collection that starts at off.
func FlowEnd(d []byte, off int) (int, error) {
	off = SkipProperties(d, off)
	if off >= len(d) || (d[off] != '[' && d[off] != '{') {
		return off, fmt.Errorf("%w at offset %d", ErrNotFlow, off)
	}
	depth := 0
	i := off
	for i < len(d) {
		switch c := d[i]; c {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		case '"', '\'':
			if i > off && !isFlowBoundary(d[i-1]) {
				break
			}
			end, err := QuotedEnd(d, i)
			if err != nil {
				return len(d), err
			}
			i = end
			continue
		case '#':
			if i > off && isWhite(d[i-1]) {
				_, next := lineAt(d, i)
				i = next
				continue
			}
		}
		i++
	}
	return len(d), fmt.Errorf("%w flow collection at offset %d", ErrUnterminated, off)
}

func isFlowBoundary(c byte) bool {
	return isWhite(c) || c == '[' || c == '{' || c == ',' || c == ':'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isWhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func lineIndent(d []byte, off int) int {
	start := bytes.LastIndexByte(d[:off], '\n') + 1
	return leadingSpaces(d[start:off])
}

func leadingSpaces(line []byte) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// lineAt returns the line starting at pos without its line break and the
// offset of the following line.
func lineAt(d []byte, pos int) ([]byte, int) {
	i := bytes.IndexByte(d[pos:], '\n')
	if i < 0 {
		return d[pos:], len(d)
	}
	return d[pos : pos+i], pos + i + 1
}
