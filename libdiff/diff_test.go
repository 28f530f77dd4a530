package libdiff

import (
	"testing"

	"github.com/signadot/yamlnav"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func load(t *testing.T, src string) yamlnav.Node {
	t.Helper()
	n, err := yamlnav.LoadString(src)
	if err != nil {
		t.Fatalf("load %q: %v", src, err)
	}
	return n
}

func render(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.String()
	}
	return res
}

type diffTest struct {
	from string
	to   string
	want []string
}

var diffTests = []diffTest{
	{
		from: "a: 1\nb: [x, y]\n",
		to:   "a: 1\nb: [x, y]\n",
	},
	{
		from: "a: 1\n",
		to:   "a: 2\n",
		want: []string{`~ $.a: "1" -> "2"`},
	},
	{
		from: "a: 1\nb: 2\n",
		to:   "b: 2\nc: 3\n",
		want: []string{`- $.a: "1"`, `+ $.c: "3"`},
	},
	{
		from: "v: version 1.2.3\n",
		to:   "v: version 1.2.4\n",
		want: []string{"~ $.v: version 1.2.[-3-]{+4+}"},
	},
	{
		from: "a: [1, 2, 3]\n",
		to:   "a: [1, 3]\n",
		want: []string{`- $.a[1]: "2"`},
	},
	{
		from: "a: [1, 3]\n",
		to:   "a: [0, 1, 3, 4]\n",
		want: []string{`+ $.a[0]: "0"`, `+ $.a[3]: "4"`},
	},
	{
		from: "a: [1, x, 3]\n",
		to:   "a: [1, y, 3]\n",
		want: []string{`~ $.a[1]: "x" -> "y"`},
	},
	{
		from: "a: [1, x, 3]\n",
		to:   "a: [1, [x], 3]\n",
		want: []string{`! $.a[1]: "x" -> <Sequence len=1>`},
	},
	{
		from: "a: [{n: 1}, {n: 2}]\n",
		to:   "a: [{n: 1}, {n: 3, m: 4}]\n",
		want: []string{`~ $.a[1].n: "2" -> "3"`, `+ $.a[1].m: "4"`},
	},
	{
		from: "a: {b: c}\n",
		to:   "a: c\n",
		want: []string{`! $.a: <Map len=1> -> "c"`},
	},
	{
		from: "",
		to:   "a: 1\n",
		want: []string{"+ $: <Map len=1>"},
	},
	{
		from: "'x.y': 1\n",
		to:   "'x.y': 2\n",
		want: []string{`~ $.'x.y': "1" -> "2"`},
	},
}

func TestDiff(t *testing.T) {
	for i := range diffTests {
		test := &diffTests[i]
		got := render(Diff(load(t, test.from), load(t, test.to)))
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q -> %q:\n%s", test.from, test.to, diff)
		}
	}
}

func TestDiffNodes(t *testing.T) {
	from, to := load(t, "a: [1, 2]\n"), load(t, "a: [1, 5]\n")
	cs := Diff(from, to)
	if len(cs) != 1 {
		t.Fatalf("got %v", render(cs))
	}
	c := cs[0]
	if !c.From.Equal(from.Get("$.a[1]")) || !c.To.Equal(to.Get("$.a[1]")) {
		t.Errorf("nodes %v", c)
	}
	if c.To.StartMark().Column != 7 {
		t.Errorf("mark %v", c.To.StartMark())
	}
}

func TestDiffCycle(t *testing.T) {
	a := load(t, "&a {self: *a, x: 1}")
	b := load(t, "&b {self: *b, x: 2}")
	got := render(Diff(a, b))
	want := []string{`~ $.x: "1" -> "2"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestReverse(t *testing.T) {
	from := load(t, "a: 1\nb: version 1.2.3\n")
	to := load(t, "b: version 1.2.4\nc: 3\n")
	got := render(Reverse(Diff(from, to)))
	want := []string{`+ $.a: "1"`, "~ $.b: version 1.2.[-4-]{+3+}", `- $.c: "3"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(render(Diff(to, from)), got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Error(diff)
	}
}

func TestDiffString(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"same", "same", ""},
		{"hello world", "hello there", ""},
		{"version 1.2.3", "version 1.2.4", "version 1.2.[-3-]{+4+}"},
		{"abcdefgh", "abcdefghij", "abcdefgh{+ij+}"},
	}
	for _, test := range tests {
		if got := DiffString(test.from, test.to); got != test.want {
			t.Errorf("%q -> %q: got %q want %q", test.from, test.to, got, test.want)
		}
	}
}

func TestOpText(t *testing.T) {
	for _, op := range []Op{Added, Removed, Changed, Retyped} {
		d, err := op.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Op
		if err := back.UnmarshalText(d); err != nil || back != op {
			t.Errorf("%s: got %s %v", op, back, err)
		}
	}
	var op Op
	if err := op.UnmarshalText([]byte("Moved")); err == nil {
		t.Error("expected error")
	}
}
