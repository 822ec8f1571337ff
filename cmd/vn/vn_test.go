package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vnodes"
)

func TestNewContext(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	patch := filepath.Join(dir, "patch.yaml")
	if err := os.WriteFile(doc, []byte("a: 1\nb:\n  c: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(patch, []byte("- op: replace\n  path: /a\n  value: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "motd"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{File: doc, Patch: patch, Mount: dir}
	c, err := cfg.newContext()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	a, err := vnodes.Get[uint64](c, "/a")
	if err != nil {
		t.Fatal(err)
	}
	if a != 2 {
		t.Errorf("a: got %d want 2", a)
	}
	s, err := vnodes.Get[string](c, "b/c")
	if err != nil {
		t.Fatal(err)
	}
	if s != "x" {
		t.Errorf("b/c: got %q want x", s)
	}
	motd, err := vnodes.Get[string](c, "/fs/motd")
	if err != nil {
		t.Fatal(err)
	}
	if motd != "hi" {
		t.Errorf("fs/motd: got %q want hi", motd)
	}
}

func TestNewContextMissingFile(t *testing.T) {
	cfg := &MainConfig{File: filepath.Join(t.TempDir(), "nope.yaml")}
	if _, err := cfg.newContext(); err == nil {
		t.Error("expected an error")
	}
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"n=3", "s=abc", "l=[1, 2]"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	want := map[string]any{"n": uint64(3), "s": "abc", "l": []any{uint64(1), uint64(2)}}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env (-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("expected an error for novalue")
	}
}
