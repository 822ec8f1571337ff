package mapnode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/node"
	"github.com/signadot/vnodes/value"
)

func TestGetSet(t *testing.T) {
	h := New()
	defer h.Drop()
	abc := intern.Intern("abc")
	if _, err := h.Get(nil, abc); !errors.Is(err, abi.ErrNoSuchEntry) {
		t.Fatalf("empty get: %v", err)
	}
	if err := h.Set(nil, abc, value.Unsigned(1)); err != nil {
		t.Fatal(err)
	}
	got, err := value.As[uint64](must(h.Get(nil, abc)))
	if err != nil || got != 1 {
		t.Errorf("got %d, %v", got, err)
	}
	if err := h.Set(nil, abc, value.Signed(-2)); err != nil {
		t.Fatal(err)
	}
	n, err := value.As[int64](must(h.Get(nil, abc)))
	if err != nil || n != -2 {
		t.Errorf("replaced: got %d, %v", n, err)
	}
	keys, err := h.List(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(intern.PathBuf{abc}, keys); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestManyKeys(t *testing.T) {
	prefixes := []string{"abc", "hello", "x", "node", "ab", "zeta", "q9", "data", "k", "vnodes"}
	h := New()
	defer h.Drop()
	for j, p := range prefixes {
		for i := 0; i < 50; i++ {
			key := intern.Intern(fmt.Sprintf("%s%d", p, i))
			if err := h.Set(nil, key, value.Signed(int64(j*50+i))); err != nil {
				t.Fatal(err)
			}
		}
	}
	for j, p := range prefixes {
		for i := 0; i < 50; i++ {
			key := intern.Intern(fmt.Sprintf("%s%d", p, i))
			got, err := value.As[int64](must(h.Get(nil, key)))
			if err != nil || got != int64(j*50+i) {
				t.Fatalf("%s: got %d, %v", key, got, err)
			}
		}
	}
	if _, err := h.Get(nil, intern.Intern("abc999")); !errors.Is(err, abi.ErrNoSuchEntry) {
		t.Errorf("abc999: %v", err)
	}
	keys, err := h.List(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 500 {
		t.Fatalf("%d keys", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not ascending at %d: %s >= %s", i, keys[i-1], keys[i])
		}
	}
}

func TestSearchBucketedAgrees(t *testing.T) {
	for n := 0; n <= 80; n++ {
		keys := make([]intern.Interned, n)
		for i := range keys {
			keys[i] = intern.Interned(2*i + 2)
		}
		for probe := intern.Interned(0); probe <= intern.Interned(2*n+3); probe++ {
			wi, wok := Search(keys, probe)
			gi, gok := SearchBucketed(keys, probe)
			if wi != gi || wok != gok {
				t.Fatalf("n=%d probe=%d: bucketed (%d, %t), want (%d, %t)", n, probe, gi, gok, wi, wok)
			}
		}
	}
}

func TestFinalizeReleasesChildren(t *testing.T) {
	parent := New()
	child := New()
	live := value.LiveRecords()
	if err := parent.Set(nil, intern.Intern("c"), child.Clone()); err != nil {
		t.Fatal(err)
	}
	child.Drop()
	if got := value.LiveRecords(); got != live {
		t.Fatalf("child destroyed while stored: %d live, want %d", got, live)
	}
	parent.Drop()
	if got := value.LiveRecords(); got != live-2 {
		t.Errorf("%d live records, want %d", got, live-2)
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	h := New()
	defer h.Drop()
	key := intern.Intern("s")
	if err := h.Set(nil, key, value.String("abc")); err != nil {
		t.Fatal(err)
	}
	got := must(h.Get(nil, key)).(value.String)
	got[0] = 'x'
	again, err := value.As[string](must(h.Get(nil, key)))
	if err != nil || again != "abc" {
		t.Errorf("stored value changed: %q, %v", again, err)
	}
}

func TestMapThroughNodeOf(t *testing.T) {
	h := New()
	defer h.Drop()
	for _, k := range []string{"b", "a", "c"} {
		if err := h.Set(nil, intern.Intern(k), value.Void{}); err != nil {
			t.Fatal(err)
		}
	}
	n, ok := node.Of(h.Ref())
	if !ok {
		t.Fatal("no node")
	}
	if got := node.Unguard(n).(*Map).Len(); got != 3 {
		t.Errorf("len %d", got)
	}
}

func must(v value.Value, err error) value.Value {
	if err != nil {
		panic(err)
	}
	return v
}

func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{4, 8, 16, 32, 64, 512} {
		keys := make([]intern.Interned, n)
		for i := range keys {
			keys[i] = intern.Interned(i + 1)
		}
		b.Run(fmt.Sprintf("binary/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Search(keys, intern.Interned(i%n+1))
			}
		})
		b.Run(fmt.Sprintf("bucketed/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				SearchBucketed(keys, intern.Interned(i%n+1))
			}
		})
	}
}
