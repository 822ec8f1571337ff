package rpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/value"
)

func pipe(t *testing.T) (*vnodes.Context, *Client) {
	t.Helper()
	c := vnodes.New()
	ctx, cancel := context.WithCancel(context.Background())
	srvConn, cliConn := net.Pipe()
	done := make(chan error, 1)
	go func() { done <- NewServer(c).ServeConn(ctx, srvConn) }()
	cli := NewClient(ctx, cliConn)
	t.Cleanup(func() {
		cli.Close()
		cancel()
		<-done
		c.Close()
	})
	return c, cli
}

func mustWire(t *testing.T, kind Kind, v any) Value {
	t.Helper()
	w, err := Wire(kind, v)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestInsertGet(t *testing.T) {
	c, cli := pipe(t)
	ctx := context.Background()
	if err := cli.Insert(ctx, "/foo", mustWire(t, KindSigned, -5)); err != nil {
		t.Fatal(err)
	}
	if err := cli.Insert(ctx, "/bar", Value{Kind: KindNode}); err != nil {
		t.Fatal(err)
	}
	if err := cli.Insert(ctx, "/bar/abc", mustWire(t, KindUnsigned, 1)); err != nil {
		t.Fatal(err)
	}
	arr := mustWire(t, KindArray, []Value{mustWire(t, KindString, "x"), mustWire(t, KindBool, true)})
	if err := cli.Insert(ctx, "/bar/list", arr); err != nil {
		t.Fatal(err)
	}

	if n, err := vnodes.Get[int64](c, "/foo"); err != nil || n != -5 {
		t.Errorf("server side foo: %d, %v", n, err)
	}

	tests := []struct {
		path string
		want value.Value
	}{
		{"/foo", value.Signed(-5)},
		{"/bar/abc", value.Unsigned(1)},
		{"/bar/list", value.Array{value.String("x"), value.Bool(true)}},
	}
	for _, tt := range tests {
		w, err := cli.Get(ctx, tt.path)
		if err != nil {
			t.Fatalf("%s: %v", tt.path, err)
		}
		got, err := Decode(w)
		if err != nil {
			t.Fatalf("%s: %v", tt.path, err)
		}
		if !value.Equal(got, tt.want) {
			t.Errorf("%s: got %s, want %s", tt.path, value.Format(got), value.Format(tt.want))
		}
	}

	w, err := cli.Get(ctx, "/bar/")
	if err != nil {
		t.Fatal(err)
	}
	if w.Kind != KindNode {
		t.Fatalf("bar kind %s", w.Kind)
	}
	keys, err := cli.List(ctx, "/bar")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"abc", "list"}, keys); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	_, cli := pipe(t)
	ctx := context.Background()
	if err := cli.Insert(ctx, "/foo", mustWire(t, KindSigned, -5)); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"missing", func() error { _, err := cli.Get(ctx, "/bar/5"); return err }, abi.ErrNoSuchEntry},
		{"through scalar", func() error { _, err := cli.Get(ctx, "/foo/x"); return err }, abi.ErrExpectedNode},
		{"empty insert", func() error { return cli.Insert(ctx, "/", Value{Kind: KindVoid}) }, abi.ErrPathEmpty},
		{"unknown kind", func() error { return cli.Insert(ctx, "/x", Value{Kind: "blob"}) }, abi.ErrUnknownTypeFlags},
		{"missing payload", func() error { return cli.Insert(ctx, "/x", Value{Kind: KindBool}) }, abi.ErrInvalidArgumentTypes},
		{"chdir scalar", func() error { return cli.Chdir(ctx, "/foo") }, abi.ErrExpectedNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChdir(t *testing.T) {
	c, cli := pipe(t)
	ctx := context.Background()
	if err := cli.Insert(ctx, "/bar", Value{Kind: KindNode}); err != nil {
		t.Fatal(err)
	}
	if err := cli.Chdir(ctx, "/bar"); err != nil {
		t.Fatal(err)
	}
	if err := cli.Insert(ctx, "rel", mustWire(t, KindIdent, "abc")); err != nil {
		t.Fatal(err)
	}
	id, err := vnodes.Get[value.Value](c, "/bar/rel")
	if err != nil {
		t.Fatal(err)
	}
	if got := value.Format(id); got != "abc" {
		t.Errorf("rel: %s", got)
	}
}
