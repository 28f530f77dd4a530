package yamlnav

import (
	"strings"
	"testing"

	"github.com/signadot/yamlnav/engine"
)

// flow renders n on one line for comparisons.
func flow(n Node) string {
	var sb strings.Builder
	writeFlow(&sb, n)
	return sb.String()
}

func writeFlow(sb *strings.Builder, n Node) {
	switch n.Type() {
	case Null:
		sb.WriteString("<null>")
	case Scalar:
		sb.WriteString(n.Text())
	case Sequence:
		sb.WriteByte('[')
		for i, y := range n.Items() {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeFlow(sb, y)
		}
		sb.WriteByte(']')
	case Map:
		sb.WriteByte('{')
		i := 0
		for k, v := range n.Entries() {
			if i > 0 {
				sb.WriteString(", ")
			}
			i++
			writeFlow(sb, k)
			sb.WriteString(": ")
			writeFlow(sb, v)
		}
		sb.WriteByte('}')
	}
}

func engines(t *testing.T, f func(t *testing.T, opt LoadOption)) {
	t.Helper()
	for _, e := range []engine.Engine{engine.Goccy(), engine.YAMLv3()} {
		t.Run(e.Name(), func(t *testing.T) {
			f(t, LoadEngine(e))
		})
	}
}

func load(t *testing.T, src string, opts ...LoadOption) Node {
	t.Helper()
	n, err := LoadString(src, opts...)
	if err != nil {
		t.Fatalf("load %q: %v", src, err)
	}
	return n
}
