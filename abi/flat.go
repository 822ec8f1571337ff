package abi

import (
	"fmt"
	"math"
)

// Flat is the ABI form of a dynamic value: 4 bytes of flags, 4 bytes of
// length and an 8-byte slot. Flags alone determine how Length and Slot are
// read.
type Flat struct {
	Flags  Flags
	Length uint32
	Slot   uint64
}

func VoidFlat() Flat {
	return Flat{}
}

func BoolFlat(b bool) Flat {
	f := Flat{Flags: Bool}
	if b {
		f.Slot = 1
	}
	return f
}

func SignedFlat(v int64) Flat {
	return Flat{Flags: SignedInt, Slot: uint64(v)}
}

func UnsignedFlat(v uint64) Flat {
	return Flat{Flags: UnsignedInt, Slot: v}
}

func FloatFlat(v float64) Flat {
	return Flat{Flags: Float, Slot: math.Float64bits(v)}
}

func InternedFlat(code uint64) Flat {
	return Flat{Flags: Interned, Slot: code}
}

func ErrorFlat(e Error) Flat {
	return Flat{Flags: ErrorValue, Slot: uint64(e)}
}

// Err returns the error code of an error-kind flat.
func (f Flat) Err() (Error, bool) {
	if f.Flags != ErrorValue {
		return 0, false
	}
	return Error(f.Slot), true
}

func (f Flat) String() string {
	switch f.Flags {
	case Void:
		return "void"
	case Bool:
		return fmt.Sprintf("bool(%t)", f.Slot != 0)
	case SignedInt:
		return fmt.Sprintf("signed(%d)", int64(f.Slot))
	case UnsignedInt:
		return fmt.Sprintf("unsigned(%d)", f.Slot)
	case Float:
		return fmt.Sprintf("float(%g)", math.Float64frombits(f.Slot))
	case ErrorValue:
		return fmt.Sprintf("error(%s)", Error(f.Slot))
	}
	return fmt.Sprintf("%s{len=%d slot=%#x}", f.Flags, f.Length, f.Slot)
}
