package main

import (
	"bytes"
	"testing"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/libdiff"
)

const treeDoc = `name: web
ports:
- 80
- 443
labels: {app: web}
`

func loadDoc(t *testing.T, src string) yamlnav.Node {
	t.Helper()
	n, err := yamlnav.LoadString(src)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestWriteTree(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := writeTree(buf, NoColors(), loadDoc(t, treeDoc), false); err != nil {
		t.Fatal(err)
	}
	want := `Map(3)
  name Scalar "web"
  ports Sequence(2)
    [0] Scalar "80"
    [1] Scalar "443"
  labels Map(1)
    app Scalar "web"
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	buf.Reset()
	if err := writeTree(buf, NoColors(), yamlnav.Node{}, true); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Null\n" {
		t.Errorf("got %q", got)
	}
}

func TestListChildren(t *testing.T) {
	root := loadDoc(t, treeDoc)
	tests := []struct {
		path string
		want string
	}{
		{"$", "name\tScalar\nports\tSequence\nlabels\tMap\n"},
		{"$.ports", "[0]\tScalar\n[1]\tScalar\n"},
		{"$.name", "\"web\"\tScalar\n"},
		{"$.nope", ""},
	}
	for _, test := range tests {
		buf := bytes.NewBuffer(nil)
		if err := listChildren(buf, NoColors(), root.Get(test.path)); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != test.want {
			t.Errorf("%s: got %q want %q", test.path, got, test.want)
		}
	}
}

func TestWriteNode(t *testing.T) {
	root := loadDoc(t, "a:\n  b: 1\n  c: [x, y]\nd: \"q\\tz\"\n")
	tests := []struct {
		path string
		text bool
		want string
	}{
		{"$.a", false, "b: 1\nc: [x, y]\n"},
		{"$.a.c", false, "[x, y]\n"},
		{"$.d", false, "\"q\\tz\"\n"},
		{"$.d", true, "q\tz\n"},
	}
	for _, test := range tests {
		buf := bytes.NewBuffer(nil)
		if err := writeNode(buf, root.Get(test.path), test.text); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != test.want {
			t.Errorf("%s: got %q want %q", test.path, got, test.want)
		}
	}
}

func TestPathArg(t *testing.T) {
	for in, want := range map[string]string{
		"$.a":  "$.a",
		".a":   "$.a",
		"[0]":  "$[0]",
		"a.b":  "$.a.b",
		"$":    "$",
		"..id": "$..id",
	} {
		got, err := pathArg(in)
		if err != nil || got != want {
			t.Errorf("%q: got %q %v", in, got, err)
		}
	}
	if _, err := pathArg(""); err == nil {
		t.Error("expected error")
	}
}

func TestLastSegment(t *testing.T) {
	for in, want := range map[string]string{
		"$.a":       "a",
		"$.a[3]":    "[3]",
		"$.a.'x.y'": "'x.y'",
		"$[?1]":     "[?1]",
	} {
		if got := lastSegment(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestWriteChanges(t *testing.T) {
	cs := libdiff.Diff(loadDoc(t, "a: 1\nb: 2\n"), loadDoc(t, "a: 1\nb: 3\nc: 4\n"))
	buf := bytes.NewBuffer(nil)
	if err := writeChanges(buf, NoColors(), cs); err != nil {
		t.Fatal(err)
	}
	want := "~ $.b: \"2\" -> \"3\"\t2:4\n+ $.c: \"4\"\t3:4\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestWriteValue(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	for _, v := range []any{"plain", []string{"a"}, 3} {
		if err := writeValue(buf, v); err != nil {
			t.Fatal(err)
		}
	}
	want := "plain\n[\n  \"a\"\n]\n3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
