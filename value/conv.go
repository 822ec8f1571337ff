package value

import (
	"bytes"
	"fmt"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
)

// Encoder is implemented by Go types with a value representation.
type Encoder interface {
	EncodeValue() (Value, error)
}

// Decoder is implemented by pointers to Go types that can be read back from a
// value.
type Decoder interface {
	DecodeValue(Value) error
}

// Of converts a Go value to a Value.
func Of(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Void{}, nil
	case Value:
		return v, nil
	case Encoder:
		return v.EncodeValue()
	case struct{}:
		return Void{}, nil
	case bool:
		return Bool(v), nil
	case int:
		return Signed(v), nil
	case int64:
		return Signed(v), nil
	case int32:
		return Signed(v), nil
	case uint:
		return Unsigned(v), nil
	case uint64:
		return Unsigned(v), nil
	case uint32:
		return Unsigned(v), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []byte:
		return String(bytes.Clone(v)), nil
	case intern.Interned:
		return Ident(v), nil
	case intern.PathBuf:
		return PathBuf(v), nil
	case intern.Path:
		return PathRef{v}, nil
	}
	return nil, fmt.Errorf("%w: no value form for %T", abi.ErrWrongType, x)
}

// MustOf is Of for types known to convert.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}
	return v
}

// As converts v to T. A case that does not match T gives abi.ErrWrongType.
func As[T any](v Value) (T, error) {
	if x, ok := v.(T); ok {
		return x, nil
	}
	var out T
	err := decodeInto(&out, v)
	return out, err
}

func decodeInto(dst any, v Value) error {
	switch d := dst.(type) {
	case *Value:
		*d = v
		return nil
	case Decoder:
		return d.DecodeValue(v)
	case *struct{}:
		if _, ok := v.(Void); ok {
			return nil
		}
	case *bool:
		if x, ok := v.(Bool); ok {
			*d = bool(x)
			return nil
		}
	case *int64:
		if x, ok := v.(Signed); ok {
			*d = int64(x)
			return nil
		}
	case *int:
		if x, ok := v.(Signed); ok {
			*d = int(x)
			return nil
		}
	case *uint64:
		if x, ok := v.(Unsigned); ok {
			*d = uint64(x)
			return nil
		}
	case *float64:
		if x, ok := v.(Float); ok {
			*d = float64(x)
			return nil
		}
	case *string:
		switch x := v.(type) {
		case String:
			*d = string(x)
			return nil
		case StringRef:
			*d = string(x)
			return nil
		}
	case *[]byte:
		switch x := v.(type) {
		case String:
			*d = x
			return nil
		case StringRef:
			*d = x
			return nil
		}
	case *intern.Interned:
		if x, ok := v.(Ident); ok {
			*d = intern.Interned(x)
			return nil
		}
	case *intern.PathBuf:
		if x, ok := v.(PathBuf); ok {
			*d = intern.PathBuf(x)
			return nil
		}
	case *intern.Path:
		switch x := v.(type) {
		case PathRef:
			*d = x.Path
			return nil
		case PathBuf:
			*d = intern.PathBuf(x).Path()
			return nil
		}
	case *Handle:
		if x, ok := v.(Handle); ok {
			*d = x
			return nil
		}
	case *Ref:
		if x, ok := v.(Ref); ok {
			*d = x
			return nil
		}
	default:
		return fmt.Errorf("%w: no decoding into %T", abi.ErrWrongType, dst)
	}
	return fmt.Errorf("%w: %s into %T", abi.ErrWrongType, kindName(v), dst)
}

func kindName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Flags().String()
}

// elems returns the first n elements of an array value. Shorter arrays give
// abi.ErrInvalidArgumentTypes. Elements past n of an owned array are released
// and their slots set to Void, so the array no longer owns them.
func elems(v Value, n int) ([]Value, error) {
	var es []Value
	switch x := v.(type) {
	case Array:
		es = x
	case ArrayRef:
		es = x
	default:
		return nil, fmt.Errorf("%w: %s is not an array", abi.ErrWrongType, kindName(v))
	}
	if len(es) < n {
		return nil, fmt.Errorf("%w: want %d elements, have %d", abi.ErrInvalidArgumentTypes, n, len(es))
	}
	if arr, ok := v.(Array); ok {
		for i := n; i < len(arr); i++ {
			Release(arr[i])
			arr[i] = Void{}
		}
	}
	return es[:n], nil
}

func encodeAll(xs ...any) (Value, error) {
	arr := make(Array, 0, len(xs))
	for _, x := range xs {
		v, err := Of(x)
		if err != nil {
			Release(arr)
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}
