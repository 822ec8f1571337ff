package abi

import (
	"strconv"
	"strings"
)

// Flags describe the kind and ownership of a Flat value. Exactly one kind bit
// is set (none for Void and value arrays); modifiers refine it.
type Flags uint32

const (
	// kinds, mutually exclusive
	Node     Flags = 0x1
	String   Flags = 0x2
	Integer  Flags = 0x4
	Float    Flags = 0x10
	Bool     Flags = 0x20
	Interned Flags = 0x40
	Err      Flags = 0x80

	// modifiers
	Signed Flags = 0x8
	Boxed  Flags = 0x100
	Array  Flags = 0x200

	KindMask = Node | String | Integer | Float | Bool | Interned | Err
)

const (
	Void        Flags = 0
	SignedInt         = Integer | Signed
	UnsignedInt       = Integer
	BoxedNode         = Node | Boxed
	NodeRef           = Node
	OwnedString       = String | Boxed
	StringRef         = String
	OwnedPath         = Interned | Array | Boxed
	PathRef           = Interned | Array
	OwnedArray        = Array | Boxed
	ArrayRef          = Array
	ErrorValue        = Err
)

func (f Flags) Kind() Flags {
	return f & KindMask
}

func (f Flags) IsBoxed() bool {
	return f&Boxed != 0
}

func (f Flags) IsArray() bool {
	return f&Array != 0
}

// HasPayload reports whether the slot of a flat with these flags is a pin.
func (f Flags) HasPayload() bool {
	return f.IsArray() || f.Kind() == String
}

var flagNames = []struct {
	f    Flags
	name string
}{
	{Node, "node"},
	{String, "string"},
	{Integer, "integer"},
	{Signed, "signed"},
	{Float, "float"},
	{Bool, "bool"},
	{Interned, "interned"},
	{Err, "error"},
	{Boxed, "boxed"},
	{Array, "array"},
}

func (f Flags) String() string {
	if f == Void {
		return "void"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.f
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}
