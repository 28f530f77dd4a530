package engine

import (
	"errors"
	"testing"

	"github.com/signadot/yamlnav/document"

	"github.com/google/go-cmp/cmp"
)

func engines(t *testing.T, f func(t *testing.T, e Engine)) {
	t.Helper()
	for _, e := range []Engine{Goccy(), YAMLv3()} {
		t.Run(e.Name(), func(t *testing.T) {
			f(t, e)
		})
	}
}

func parse(t *testing.T, e Engine, src string) *document.Document {
	t.Helper()
	doc, err := e.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return doc
}

func value(d *document.Document, m document.Ref, key string) document.Ref {
	for _, p := range d.Pairs(m) {
		if text, ok := d.Scalar(p.Key); ok && text == key {
			return p.Value
		}
	}
	return 0
}

func texts(d *document.Document, seq document.Ref) []string {
	var res []string
	for _, r := range d.Items(seq) {
		text, _ := d.Scalar(r)
		res = append(res, text)
	}
	return res
}

func TestParseStructure(t *testing.T) {
	engines(t, func(t *testing.T, e Engine) {
		d := parse(t, e, "a: [1, 2]\nb: &x hi\nc: *x\n")
		root := d.Root()
		if d.Kind(root) != document.MappingNode {
			t.Fatalf("root kind %s", d.Kind(root))
		}
		if n := len(d.Pairs(root)); n != 3 {
			t.Fatalf("got %d pairs", n)
		}
		a := value(d, root, "a")
		if diff := cmp.Diff([]string{"1", "2"}, texts(d, a)); diff != "" {
			t.Error(diff)
		}
		b, c := value(d, root, "b"), value(d, root, "c")
		if text, _ := d.Scalar(b); text != "hi" {
			t.Errorf("b: got %q", text)
		}
		if b != c {
			t.Errorf("alias resolved to %d, anchor is %d", c, b)
		}
		if d.Engine() != e.Name() {
			t.Errorf("engine %q", d.Engine())
		}
	})
}

func TestParseMarks(t *testing.T) {
	engines(t, func(t *testing.T, e Engine) {
		d := parse(t, e, "a: [1, 2]\nb:\n  - x\n  - y\n")
		root := d.Root()
		if got := d.StartMark(root); got != (document.Mark{}) {
			t.Errorf("root start %v", got)
		}
		a := value(d, root, "a")
		want := []document.Mark{{Offset: 3, Line: 0, Column: 3}, {Offset: 9, Line: 0, Column: 9}}
		got := []document.Mark{d.StartMark(a), d.EndMark(a)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("a: %s", diff)
		}
		b := value(d, root, "b")
		want = []document.Mark{{Offset: 15, Line: 2, Column: 2}, {Offset: 24, Line: 3, Column: 5}}
		got = []document.Mark{d.StartMark(b), d.EndMark(b)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("b: %s", diff)
		}
		if end := d.EndMark(root); end.Offset != 24 {
			t.Errorf("root end %v", end)
		}
	})
}

func TestParseScalars(t *testing.T) {
	src := "q: \"x\\ty\"\ns: 'it''s'\nl: |\n  one\n  two\nf: >\n  one\n  two\nn: ~\ne:\nm: a\n  b\n"
	want := map[string]string{
		"q": "x\ty",
		"s": "it's",
		"l": "one\ntwo\n",
		"f": "one two\n",
		"n": "~",
		"e": "",
		"m": "a b",
	}
	engines(t, func(t *testing.T, e Engine) {
		d := parse(t, e, src)
		got := map[string]string{}
		for _, p := range d.Pairs(d.Root()) {
			k, _ := d.Scalar(p.Key)
			v, ok := d.Scalar(p.Value)
			if !ok {
				t.Errorf("%s: not a scalar", k)
			}
			got[k] = v
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error(diff)
		}
	})
}

func TestParseEmpty(t *testing.T) {
	engines(t, func(t *testing.T, e Engine) {
		for _, src := range []string{"", "# just a comment\n"} {
			d := parse(t, e, src)
			if d.Root() != 0 {
				t.Errorf("%q: root %d", src, d.Root())
			}
		}
	})
}

func TestParseErrors(t *testing.T) {
	engines(t, func(t *testing.T, e Engine) {
		for _, src := range []string{"a: [1, 2\n", "a: *nope\n"} {
			_, err := e.Parse([]byte(src))
			if !errors.Is(err, ErrParse) {
				t.Errorf("%q: got %v", src, err)
				continue
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("%q: %T is not a *ParseError", src, err)
				continue
			}
			if pe.Engine != e.Name() {
				t.Errorf("%q: engine %q", src, pe.Engine)
			}
		}
	})
}

func TestParseAll(t *testing.T) {
	src := "a: 1\n---\nb: 2\n"
	engines(t, func(t *testing.T, e Engine) {
		docs, err := e.ParseAll([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		if len(docs) != 2 {
			t.Fatalf("got %d docs", len(docs))
		}
		for i, key := range []string{"a", "b"} {
			if value(docs[i], docs[i].Root(), key) == 0 {
				t.Errorf("doc %d: missing %q", i, key)
			}
		}
		d := parse(t, e, src)
		if value(d, d.Root(), "b") != 0 {
			t.Error("Parse loaded more than the first document")
		}
	})
}

func TestSelfAlias(t *testing.T) {
	engines(t, func(t *testing.T, e Engine) {
		d := parse(t, e, "&a [x, *a]\n")
		root := d.Root()
		items := d.Items(root)
		if len(items) != 2 || items[1] != root {
			t.Fatalf("items %v, root %d", items, root)
		}
	})
}

func TestRegistry(t *testing.T) {
	if diff := cmp.Diff([]string{"goccy", "yaml.v3"}, Names()); diff != "" {
		t.Error(diff)
	}
	e, err := Lookup("yaml.v3")
	if err != nil || e.Name() != "yaml.v3" {
		t.Errorf("lookup: %v %v", e, err)
	}
	if _, err := Lookup("libyaml"); !errors.Is(err, ErrNoEngine) {
		t.Errorf("got %v", err)
	}
	if err := Register(Goccy()); !errors.Is(err, ErrEngineExists) {
		t.Errorf("got %v", err)
	}
	if Default.Name() != "goccy" {
		t.Errorf("default %q", Default.Name())
	}
}

func TestDuplicateKeys(t *testing.T) {
	engines(t, func(t *testing.T, e Engine) {
		d := parse(t, e, "a: 1\na: 2\n")
		pairs := d.Pairs(d.Root())
		if len(pairs) != 2 {
			t.Fatalf("got %d pairs", len(pairs))
		}
		if text, _ := d.Scalar(value(d, d.Root(), "a")); text != "1" {
			t.Errorf("a = %q", text)
		}
	})
}

func TestGoccyCollectionKeys(t *testing.T) {
	d := parse(t, Goccy(), "? [x]\n: 3\nk: v\n")
	if d.Engine() != YAMLv3().Name() {
		t.Errorf("engine %q", d.Engine())
	}
	if text, _ := d.Scalar(value(d, d.Root(), "k")); text != "v" {
		t.Errorf("k = %q", text)
	}
	docs, err := Goccy().ParseAll([]byte("{[x]: 1}\n---\na: b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents", len(docs))
	}
	if d := parse(t, Goccy(), "a: b\n"); d.Engine() != "goccy" {
		t.Errorf("engine %q", d.Engine())
	}
}
