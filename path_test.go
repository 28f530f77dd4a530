package yamlnav

import (
	"errors"
	"strings"
	"testing"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  "null",
	},
	{
		Path: "$.f",
		Doc:  "f: 1",
		Res:  "1",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  "[1, 2, 3]",
	},
	{
		Path: "$[1].f",
		Doc:  "[0, {\"f\": 2, \"g\": 3}]",
		Res:  "2",
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  "three",
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.'$f[\\'3]'[2]",
		Doc:  `{"a": [1,2], "$f['3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.f[3]",
		Doc:  "f: [1]",
		Res:  "<null>",
	},
	{
		Path: "$.f.g",
		Doc:  "f: [1]",
		Res:  "<null>",
	},
	{
		NoGet: true,
		Path:  "$[*]",
		Doc:   "[1,2,3]",
		Res:   "[1, 2, 3]",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   "b: [1,2,3]",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.b[*]",
		Doc:   "b: [1,2,3]",
		Res:   "[1, 2, 3]",
	},
	{
		NoGet: true,
		Path:  "$.c.d.a",
		Doc:   "a: b\nc:\n  d: 2\n  a: 3",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$..a",
		Doc:   "a: b\nc:\n  d: 2\n  a: 3",
		Res:   "[b, 3]",
	},
	{
		NoGet: true,
		Path:  "$...a",
		Doc:   "a: b\nc:\n  d: 2\n  a: 3",
		Res:   "[b, 3]",
	},
	{
		NoGet: true,
		Path:  "$.c..a",
		Doc:   "a: b\nc:\n  d: 2\n  a: 3",
		Res:   "[3]",
	},
	{
		NoGet: true,
		Path:  "$.c..x",
		Doc:   "a: b\nc:\n  d: 2\n  a: 3",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.s[*].n",
		Doc:   "s:\n- n: 1\n- m: 2\n- n: 3\n",
		Res:   "[1, 3]",
	},
	{
		NoGet: true,
		Path:  "$..",
		Doc:   "a: [x]",
		Res:   "[{a: [x]}, [x], x]",
	},
}

func flows(ns []Node) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = flow(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestPathGet(t *testing.T) {
	engines(t, func(t *testing.T, opt LoadOption) {
		for i := range pathTests {
			pathTest := &pathTests[i]
			if pathTest.NoGet {
				continue
			}
			node := load(t, pathTest.Doc, opt)
			res, err := node.GetPath(pathTest.Path)
			if err != nil {
				t.Error(err)
				continue
			}
			if out := flow(res); out != pathTest.Res {
				t.Errorf("%s on %q: got %q want %q", pathTest.Path, pathTest.Doc, out, pathTest.Res)
			}
			if !node.Get(pathTest.Path).Equal(res) {
				t.Errorf("%s: Get differs from GetPath", pathTest.Path)
			}
		}
	})
}

func TestPathQuery(t *testing.T) {
	engines(t, func(t *testing.T, opt LoadOption) {
		for i := range pathTests {
			pathTest := &pathTests[i]
			in := load(t, pathTest.Doc, opt)
			lst, err := in.Query(pathTest.Path)
			if err != nil {
				t.Error(err)
				continue
			}
			if !pathTest.NoGet {
				get := in.Get(pathTest.Path)
				if !get.Bool() {
					if len(lst) != 0 {
						t.Errorf("%s: query found %s, get found nothing", pathTest.Path, flows(lst))
					}
					continue
				}
				if len(lst) != 1 || !lst[0].Equal(get) {
					t.Errorf("%s: query gave %s, get %s", pathTest.Path, flows(lst), flow(get))
				}
				continue
			}
			if ls := flows(lst); ls != pathTest.Res {
				t.Errorf("%s on %q: got %s want %s", pathTest.Path, pathTest.Doc, ls, pathTest.Res)
			}
		}
	})
}

func TestPathChained(t *testing.T) {
	root := load(t, "a:\n- b: 1\n- b: 2\n")
	for _, p := range []string{"$.a[0].b", "$.a[1].b", "$.a[2].b", "$.b[0].a"} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Fatal(err)
		}
		chained := root
		for x := pp; x != nil; x = x.Next {
			switch {
			case x.Field != nil:
				chained = chained.Key(*x.Field)
			case x.Index != nil:
				chained = chained.Index(*x.Index)
			}
		}
		if !root.Get(p).Equal(chained) {
			t.Errorf("%s: got %s want %s", p, flow(root.Get(p)), flow(chained))
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "$", want: "$"},
		{in: "$.a.b", want: "$.a.b"},
		{in: "$.a[3][*]", want: "$.a[3][*]"},
		{in: "$..a", want: "$...a"},
		{in: "$.'a.b'", want: "$.'a.b'"},
		{in: "$.'it\\'s'", want: "$.'it\\'s'"},
		{in: "", err: true},
		{in: "a.b", err: true},
		{in: "$.", err: true},
		{in: "$.a[", err: true},
		{in: "$[-1]", err: true},
		{in: "$[x]", err: true},
		{in: "$.'open", err: true},
		{in: "$a", err: true},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			p, err := ParsePath(test.in)
			if test.err {
				if !errors.Is(err, ErrPath) {
					t.Errorf("got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != test.want {
				t.Errorf("got %q want %q", got, test.want)
			}
		})
	}
}

func TestGetPathErrors(t *testing.T) {
	root := load(t, "a: [1]\n")
	for _, p := range []string{"$.a[*]", "$..a", "nope"} {
		if _, err := root.GetPath(p); !errors.Is(err, ErrPath) {
			t.Errorf("%s: got %v", p, err)
		}
		if root.Get(p).Bool() {
			t.Errorf("%s: Get found a node", p)
		}
	}
}
