package fsnode

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"readme.md":         {Data: []byte("hello")},
		"etc/hosts":         {Data: []byte("127.0.0.1 localhost\n")},
		"etc/Motd":          {Data: []byte("motd")},
		"has space.txt":     {Data: []byte("skipped")},
		"averyverylongname": {Data: []byte("skipped")},
	}
}

func TestList(t *testing.T) {
	h := New(testFS())
	defer h.Drop()
	got, err := h.List(nil)
	if err != nil {
		t.Fatal(err)
	}
	want := intern.PathBuf{intern.Intern("etc"), intern.Intern("readme.md")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	h := New(testFS())
	defer h.Drop()
	data, err := h.Get(nil, intern.Intern("readme.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(data, value.String("hello")) {
		t.Errorf("readme.md: got %s", value.Format(data))
	}

	etc, err := h.Get(nil, intern.Intern("etc"))
	if err != nil {
		t.Fatal(err)
	}
	dir, ok := etc.(value.Handle)
	if !ok {
		t.Fatalf("etc is %s", value.Format(etc))
	}
	defer dir.Drop()
	motd, err := value.As[string](must(dir.Get(nil, intern.Intern("motd"))))
	if err != nil || motd != "motd" {
		t.Errorf("folded lookup: got %q, %v", motd, err)
	}
	if _, err := dir.Get(nil, intern.Intern("nope")); !errors.Is(err, abi.ErrNoSuchEntry) {
		t.Errorf("missing: %v", err)
	}
}

func TestReadOnly(t *testing.T) {
	h := New(testFS())
	defer h.Drop()
	if err := h.Set(nil, intern.Intern("x"), value.Signed(1)); !errors.Is(err, abi.ErrActionNotSupported) {
		t.Errorf("set: %v", err)
	}
}

func TestOpenNotDir(t *testing.T) {
	if _, err := Open("fsnode.go"); !errors.Is(err, ErrNotDir) {
		t.Errorf("got %v", err)
	}
}

func must(v value.Value, err error) value.Value {
	if err != nil {
		panic(err)
	}
	return v
}
