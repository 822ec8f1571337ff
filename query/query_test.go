package query

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/load"
)

func newContext(t *testing.T) *vnodes.Context {
	t.Helper()
	h, err := load.New([]byte("foo: -5\nbar:\n  abc: 1\n  name: hello\n  list: [1, 2, 3]\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := vnodes.New(vnodes.WithRoot(h))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestEval(t *testing.T) {
	c := newContext(t)
	tests := []struct {
		src  string
		env  map[string]any
		want any
	}{
		{src: `get("/foo")`, want: int64(-5)},
		{src: `get("/bar/abc") == 1`, want: true},
		{src: `get("/bar").name + "!"`, want: "hello!"},
		{src: `ls("/bar")`, want: []string{"abc", "list", "name"}},
		{src: `len(get("/bar/list"))`, want: 3},
		{src: `exists("/bar/abc")`, want: true},
		{src: `exists("/bar/nope")`, want: false},
		{src: `exists("/foo/x")`, want: false},
		{src: `get(p) < 0`, env: map[string]any{"p": "/foo"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(c, tt.src, tt.env)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Eval mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	c := newContext(t)
	if _, err := Eval(c, `get("/nope")`, nil); err == nil || !strings.Contains(err.Error(), abi.ErrNoSuchEntry.Error()) {
		t.Errorf("missing: %v", err)
	}
	if _, err := Eval(c, `get(`, nil); err == nil {
		t.Error("syntax error not reported")
	}
}
