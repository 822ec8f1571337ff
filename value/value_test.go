package value

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
)

// counter is a minimal dispatcher supporting Clone and Drop.
type counter struct {
	finalized int
}

func (c *counter) dispatch(self *Record, _ Namespace, op abi.Op, arg abi.Flat) abi.Flat {
	ReleaseFlat(arg)
	switch op {
	case abi.Clone:
		self.Incr()
	case abi.Drop:
		self.Decr(func(any) { c.finalized++ })
	default:
		return abi.ErrorFlat(abi.ErrActionNotSupported)
	}
	return abi.VoidFlat()
}

func newCounted() (Handle, *counter) {
	c := &counter{}
	return NewRecord(c, c.dispatch), c
}

func TestFlatRoundTrip(t *testing.T) {
	h, _ := newCounted()
	defer h.Drop()
	path := intern.MustPath("/a/b")
	vals := []Value{
		Void{},
		Bool(true),
		Bool(false),
		Signed(-5),
		Signed(math.MinInt64),
		Unsigned(math.MaxUint64),
		Float(1.5),
		Ident(intern.Intern("abc")),
		String("hello"),
		StringRef("borrowed"),
		PathBuf(path),
		PathRef{path.Path()},
		h.Ref(),
		Array{Signed(1), String("x"), Array{Bool(true)}},
		ArrayRef{Unsigned(2), StringRef("y")},
		Err{Code: abi.ErrNoSuchEntry},
	}
	pins := abi.Pins()
	for _, v := range vals {
		f := ToFlat(v)
		if f.Flags != v.Flags() {
			t.Errorf("%s: flags %s, want %s", Format(v), f.Flags, v.Flags())
		}
		got := FromFlat(f)
		if !Equal(got, v) {
			t.Errorf("round trip %s: got %s", Format(v), Format(got))
		}
	}
	if n := abi.Pins(); n != pins {
		t.Errorf("leaked %d pins", n-pins)
	}
}

func TestHandleFlatMovesCount(t *testing.T) {
	h, c := newCounted()
	f := ToFlat(h.Clone())
	if got := h.Record().Strong(); got != 2 {
		t.Fatalf("strong %d, want 2", got)
	}
	back := FromFlat(f)
	if !Equal(back, h) {
		t.Fatalf("got %s, want %s", Format(back), h)
	}
	Release(back)
	h.Drop()
	if c.finalized != 1 {
		t.Errorf("finalized %d times", c.finalized)
	}
}

func TestBorrowedArrayElements(t *testing.T) {
	h, c := newCounted()
	f := ToFlat(ArrayRef{String("s"), h, Array{PathBuf(intern.MustPath("a"))}})
	got := FromFlat(f)
	want := ArrayRef{StringRef("s"), h.Ref(), ArrayRef{PathRef{intern.MustPath("a").Path()}}}
	if !Equal(got, want) {
		t.Errorf("got %s, want %s", Format(got), Format(want))
	}
	if s := h.Record().Strong(); s != 1 {
		t.Errorf("strong %d, want 1", s)
	}
	h.Drop()
	if c.finalized != 1 {
		t.Errorf("finalized %d times", c.finalized)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		flat abi.Flat
		want error
	}{
		{"unknown flags", abi.Flat{Flags: abi.Node | abi.String}, abi.ErrUnknownTypeFlags},
		{"high bits", abi.Flat{Flags: 0x800}, abi.ErrUnknownTypeFlags},
		{"dangling pin", abi.Flat{Flags: abi.OwnedString, Length: 3, Slot: math.MaxUint64}, abi.ErrInvalidArgumentTypes},
		{"dead node", abi.Flat{Flags: abi.NodeRef, Slot: math.MaxUint64}, abi.ErrInvalidArgumentTypes},
		{"length mismatch", abi.Flat{Flags: abi.OwnedString, Length: 9, Slot: abi.Pin([]byte("abc"))}, abi.ErrInvalidArgumentTypes},
		{"payload type", abi.Flat{Flags: abi.OwnedString, Length: 1, Slot: abi.Pin(1)}, abi.ErrInvalidArgumentTypes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.flat)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromFlatPanicsOnUnknownFlags(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	FromFlat(abi.Flat{Flags: abi.Float | abi.Boxed})
}

func TestCloneDrop(t *testing.T) {
	h, c := newCounted()
	live := LiveRecords()
	clones := []Handle{h.Clone(), h.Clone(), h.Clone()}
	if s := h.Record().Strong(); s != 4 {
		t.Fatalf("strong %d, want 4", s)
	}
	for _, cl := range clones {
		cl.Drop()
		if c.finalized != 0 {
			t.Fatalf("finalized early")
		}
	}
	h.Drop()
	if c.finalized != 1 {
		t.Fatalf("finalized %d times", c.finalized)
	}
	if got := LiveRecords(); got != live-1 {
		t.Errorf("live records %d, want %d", got, live-1)
	}
	defer func() {
		if recover() == nil {
			t.Error("dispatch on destroyed record did not panic")
		}
	}()
	h.Drop()
}

func TestCountOverflowAborts(t *testing.T) {
	h, _ := newCounted()
	old := abort
	defer func() { abort = old }()
	var msg string
	abort = func(m string) { msg = m }
	h.Record().strong.Store(math.MaxInt64 + 1)
	h.Clone()
	if msg == "" {
		t.Error("no abort")
	}
}

func TestMakeOwned(t *testing.T) {
	buf := []byte("abc")
	h, c := newCounted()
	got := MakeOwned(ArrayRef{StringRef(buf), h.Ref(), Signed(3)})
	buf[0] = 'x'
	want := Array{String("abc"), h, Signed(3)}
	if !Equal(got, want) {
		t.Fatalf("got %s, want %s", Format(got), Format(want))
	}
	if s := h.Record().Strong(); s != 2 {
		t.Errorf("strong %d, want 2", s)
	}
	Release(got)
	h.Drop()
	if c.finalized != 1 {
		t.Errorf("finalized %d times", c.finalized)
	}
}

func TestResult(t *testing.T) {
	v, err := IntoResult(Err{Code: abi.ErrPathEmpty})
	if v != nil || !errors.Is(err, abi.ErrPathEmpty) {
		t.Errorf("got %v, %v", v, err)
	}
	v, err = IntoResult(Signed(1))
	if err != nil || !Equal(v, Signed(1)) {
		t.Errorf("got %v, %v", v, err)
	}
	if got := FromResult(nil, errors.New("plain")); !Equal(got, Err{Code: abi.ErrActionNotSupported}) {
		t.Errorf("plain error: got %s", Format(got))
	}
	if got := FromResult(nil, nil); !Equal(got, Void{}) {
		t.Errorf("nil result: got %s", Format(got))
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Void{}, "()"},
		{Signed(-5), "-5"},
		{Unsigned(1), "1"},
		{Float(0.25), "0.25"},
		{Ident(intern.Intern("abc")), "abc"},
		{String("x\n"), `"x\n"`},
		{PathBuf(intern.MustPath("/a/b")), "/a/b"},
		{Array{Bool(true), Signed(2)}, "[true, 2]"},
		{Err{Code: abi.ErrNoSuchEntry}, "error(no such entry)"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Format(tt.v)); diff != "" {
			t.Errorf("Format mismatch (-want +got):\n%s", diff)
		}
	}
}
