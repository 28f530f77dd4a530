package yamlnav

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/signadot/yamlnav/engine"
)

func TestLoadStream(t *testing.T) {
	engines(t, func(t *testing.T, opt LoadOption) {
		root, err := LoadStream(strings.NewReader("a: b\n"), opt)
		if err != nil {
			t.Fatal(err)
		}
		if root.Key("a").Text() != "b" {
			t.Errorf("got %s", flow(root))
		}
	})
	_, err := LoadStream(iotest.ErrReader(errors.New("boom")))
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	engines(t, func(t *testing.T, opt LoadOption) {
		root, err := LoadString("a: [1, 2\n", opt)
		if !errors.Is(err, engine.ErrParse) {
			t.Errorf("got %v", err)
		}
		if root.Bool() {
			t.Error("failed load returned a root")
		}
		if _, err := LoadAll([]byte("a: 1\n---\n[\n"), opt); !errors.Is(err, engine.ErrParse) {
			t.Errorf("all: got %v", err)
		}
	})
}

func TestLoadEmpty(t *testing.T) {
	engines(t, func(t *testing.T, opt LoadOption) {
		root, err := LoadBytes(nil, opt)
		if err != nil {
			t.Fatal(err)
		}
		if root.Bool() || root.Size() != 0 || !root.Begin().Equal(root.End()) {
			t.Errorf("got %s", flow(root))
		}
	})
}

func TestLoadAll(t *testing.T) {
	engines(t, func(t *testing.T, opt LoadOption) {
		roots, err := LoadAll([]byte("a: 1\n---\n- 2\n---\nthree\n"), opt)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, r := range roots {
			got = append(got, flow(r))
		}
		if want := []string{"{a: 1}", "[2]", "three"}; strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("got %v want %v", got, want)
		}
	})
}
