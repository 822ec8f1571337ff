package abi

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"unsafe"
)

func TestFlatLayout(t *testing.T) {
	var f Flat
	if got := unsafe.Sizeof(f); got != 16 {
		t.Fatalf("sizeof(Flat) = %d, want 16", got)
	}
	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Flags", unsafe.Offsetof(f.Flags), 0},
		{"Length", unsafe.Offsetof(f.Length), 4},
		{"Slot", unsafe.Offsetof(f.Slot), 8},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("offsetof(%s) = %d, want %d", o.name, o.got, o.want)
		}
	}
	if got := unsafe.Sizeof(Op(0)); got != 1 {
		t.Errorf("sizeof(Op) = %d", got)
	}
}

func TestOpValues(t *testing.T) {
	tests := []struct {
		op   Op
		want uint8
		name string
	}{
		{Call, 0, "call"},
		{Get, 1, "get"},
		{Set, 2, "set"},
		{List, 3, "list"},
		{Clone, 4, "clone"},
		{Drop, 5, "drop"},
	}
	for _, tt := range tests {
		if uint8(tt.op) != tt.want || tt.op.String() != tt.name {
			t.Errorf("op %s = %d", tt.op, uint8(tt.op))
		}
	}
	if Op(9).String() != "op(9)" {
		t.Errorf("unknown op string %q", Op(9).String())
	}
}

func TestFlagsExclusiveKinds(t *testing.T) {
	kinds := []Flags{Node, String, Integer, Float, Bool, Interned, Err}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && a&b != 0 {
				t.Errorf("kinds %s and %s overlap", a, b)
			}
		}
		if a&(Signed|Boxed|Array) != 0 {
			t.Errorf("kind %s overlaps a modifier", a)
		}
	}
}

func TestFlagsString(t *testing.T) {
	tests := map[Flags]string{
		Void:         "void",
		SignedInt:    "integer|signed",
		OwnedString:  "string|boxed",
		OwnedPath:    "interned|boxed|array",
		Flags(0x800): "0x800",
	}
	for f, want := range tests {
		if got := f.String(); got != want {
			t.Errorf("%#x.String() = %q, want %q", uint32(f), got, want)
		}
	}
}

func TestScalarFlats(t *testing.T) {
	if f := SignedFlat(-5); int64(f.Slot) != -5 || f.Flags != SignedInt {
		t.Errorf("signed flat %v", f)
	}
	if f := FloatFlat(-3.14); math.Float64frombits(f.Slot) != -3.14 {
		t.Errorf("float flat %v", f)
	}
	if f := BoolFlat(true); f.Slot != 1 {
		t.Errorf("bool flat %v", f)
	}
	e, ok := ErrorFlat(ErrNoSuchEntry).Err()
	if !ok || e != ErrNoSuchEntry {
		t.Errorf("error flat %v %v", e, ok)
	}
	if _, ok := VoidFlat().Err(); ok {
		t.Errorf("void is not an error")
	}
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("resolving /x: %w", ErrNoSuchEntry)
	if !errors.Is(err, ErrNoSuchEntry) {
		t.Errorf("errors.Is failed")
	}
	if ErrPathEmpty.Error() != "path empty" {
		t.Errorf("got %q", ErrPathEmpty.Error())
	}
	if Error(99).Valid() || !ErrWrongType.Valid() {
		t.Errorf("Valid")
	}
}

func TestPins(t *testing.T) {
	before := Pins()
	h := Pin([]byte("abc"))
	if Pins() != before+1 {
		t.Errorf("pin not registered")
	}
	v, ok := Pinned(h)
	if !ok || string(v.([]byte)) != "abc" {
		t.Errorf("Pinned = %v %v", v, ok)
	}
	if _, ok := Unpin(h); !ok {
		t.Errorf("Unpin failed")
	}
	if _, ok := Unpin(h); ok {
		t.Errorf("double Unpin succeeded")
	}
	if Pins() != before {
		t.Errorf("pin leaked")
	}
}
