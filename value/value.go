package value

import (
	"bytes"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
)

// Value is a native dynamic value. The concrete types in this package are the
// only implementations.
type Value interface {
	// Flags returns the flags of the flat form of the value.
	Flags() abi.Flags
	isValue()
}

type (
	Void     struct{}
	Bool     bool
	Signed   int64
	Unsigned uint64
	Float    float64
	// Ident is an interned identifier.
	Ident intern.Interned
	// String owns its bytes.
	String []byte
	// StringRef aliases bytes owned elsewhere.
	StringRef []byte
	PathBuf   intern.PathBuf
	PathRef   struct{ intern.Path }
	// Array owns its elements.
	Array []Value
	// ArrayRef is a borrowed view of elements owned elsewhere.
	ArrayRef []Value
	// Err carries an error code as a value.
	Err struct{ Code abi.Error }
)

func (Void) Flags() abi.Flags      { return abi.Void }
func (Bool) Flags() abi.Flags      { return abi.Bool }
func (Signed) Flags() abi.Flags    { return abi.SignedInt }
func (Unsigned) Flags() abi.Flags  { return abi.UnsignedInt }
func (Float) Flags() abi.Flags     { return abi.Float }
func (Ident) Flags() abi.Flags     { return abi.Interned }
func (String) Flags() abi.Flags    { return abi.OwnedString }
func (StringRef) Flags() abi.Flags { return abi.StringRef }
func (PathBuf) Flags() abi.Flags   { return abi.OwnedPath }
func (PathRef) Flags() abi.Flags   { return abi.PathRef }
func (Handle) Flags() abi.Flags    { return abi.BoxedNode }
func (Ref) Flags() abi.Flags       { return abi.NodeRef }
func (Array) Flags() abi.Flags     { return abi.OwnedArray }
func (ArrayRef) Flags() abi.Flags  { return abi.ArrayRef }
func (Err) Flags() abi.Flags       { return abi.ErrorValue }

func (Void) isValue()      {}
func (Bool) isValue()      {}
func (Signed) isValue()    {}
func (Unsigned) isValue()  {}
func (Float) isValue()     {}
func (Ident) isValue()     {}
func (String) isValue()    {}
func (StringRef) isValue() {}
func (PathBuf) isValue()   {}
func (PathRef) isValue()   {}
func (Handle) isValue()    {}
func (Ref) isValue()       {}
func (Array) isValue()     {}
func (ArrayRef) isValue()  {}
func (Err) isValue()       {}

func (e Err) Error() string {
	return e.Code.Error()
}

// IsNode reports whether v is a node handle or reference.
func IsNode(v Value) bool {
	return v != nil && v.Flags().Kind() == abi.Node
}

// NodeOf returns the node reference of a Handle or Ref value.
func NodeOf(v Value) (Ref, bool) {
	switch x := v.(type) {
	case Handle:
		return x.Ref(), true
	case Ref:
		return x, true
	}
	return Ref{}, false
}

// Equal reports whether a and b are the same case with the same content.
// Node values are equal when they designate the same record.
func Equal(a, b Value) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	switch x := a.(type) {
	case String:
		return bytes.Equal(x, b.(String))
	case StringRef:
		return bytes.Equal(x, b.(StringRef))
	case PathBuf:
		return intern.PathBuf(x).Path().Equal(intern.PathBuf(b.(PathBuf)).Path())
	case PathRef:
		return x.Path.Equal(b.(PathRef).Path)
	case Handle:
		return x.rec == b.(Handle).rec
	case Ref:
		return x.rec == b.(Ref).rec
	case Array:
		return elemsEqual(x, b.(Array))
	case ArrayRef:
		return elemsEqual(x, b.(ArrayRef))
	}
	return a == b
}

func elemsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Format renders v for humans.
func Format(v Value) string {
	switch x := v.(type) {
	case nil, Void:
		return "()"
	case Bool:
		return strconv.FormatBool(bool(x))
	case Signed:
		return strconv.FormatInt(int64(x), 10)
	case Unsigned:
		return strconv.FormatUint(uint64(x), 10)
	case Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case Ident:
		return intern.Interned(x).String()
	case String:
		return strconv.Quote(string(x))
	case StringRef:
		return strconv.Quote(string(x))
	case PathBuf:
		return intern.PathBuf(x).String()
	case PathRef:
		return x.Path.String()
	case Handle:
		return x.String()
	case Ref:
		return x.String()
	case Array:
		return formatElems(x)
	case ArrayRef:
		return formatElems(x)
	case Err:
		return "error(" + x.Code.Error() + ")"
	}
	return "?"
}

func formatElems(elems []Value) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = Format(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
