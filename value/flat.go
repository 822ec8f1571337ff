package value

import (
	"fmt"
	"math"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
)

// ToFlat converts v to its flat form, moving ownership of v into the result.
// Payloads are pinned; the consumer of the flat releases them.
func ToFlat(v Value) abi.Flat {
	switch x := v.(type) {
	case nil, Void:
		return abi.VoidFlat()
	case Bool:
		return abi.BoolFlat(bool(x))
	case Signed:
		return abi.SignedFlat(int64(x))
	case Unsigned:
		return abi.UnsignedFlat(uint64(x))
	case Float:
		return abi.FloatFlat(float64(x))
	case Ident:
		return abi.InternedFlat(uint64(x))
	case Err:
		return abi.ErrorFlat(x.Code)
	case String:
		return pinFlat(abi.OwnedString, []byte(x), len(x))
	case StringRef:
		return pinFlat(abi.StringRef, []byte(x), len(x))
	case PathBuf:
		return pinFlat(abi.OwnedPath, intern.PathBuf(x), len(x))
	case PathRef:
		return pinFlat(abi.PathRef, x.Path, x.Len())
	case Handle:
		return abi.Flat{Flags: abi.BoxedNode, Slot: x.rec.id}
	case Ref:
		return abi.Flat{Flags: abi.NodeRef, Slot: x.rec.id}
	case Array:
		flats := make([]abi.Flat, len(x))
		for i, e := range x {
			flats[i] = ToFlat(e)
		}
		return pinFlat(abi.OwnedArray, flats, len(flats))
	case ArrayRef:
		flats := make([]abi.Flat, len(x))
		for i, e := range x {
			flats[i] = ToFlat(borrow(e))
		}
		return pinFlat(abi.ArrayRef, flats, len(flats))
	}
	panic(fmt.Sprintf("value: unknown value type %T", v))
}

// borrow returns the borrowed case of an element of a borrowed array.
func borrow(v Value) Value {
	switch x := v.(type) {
	case String:
		return StringRef(x)
	case PathBuf:
		return PathRef{intern.PathBuf(x).Path()}
	case Handle:
		return x.Ref()
	case Array:
		return ArrayRef(x)
	}
	return v
}

func pinFlat(flags abi.Flags, payload any, n int) abi.Flat {
	if n > math.MaxUint32 {
		panic(fmt.Sprintf("value: %s payload too long (%d)", flags, n))
	}
	return abi.Flat{Flags: flags, Length: uint32(n), Slot: abi.Pin(payload)}
}

// FromFlat converts a flat produced by ToFlat back to a value, consuming it.
// Flags outside the defined combinations panic.
func FromFlat(f abi.Flat) Value {
	v, err := Decode(f)
	if err != nil {
		panic(fmt.Sprintf("value: cannot decode %s: %v", f, err))
	}
	return v
}

// Decode is FromFlat for flats of unknown provenance. Unknown flags yield
// abi.ErrUnknownTypeFlags; dangling pins or node ids yield
// abi.ErrInvalidArgumentTypes.
func Decode(f abi.Flat) (Value, error) {
	switch f.Flags {
	case abi.Void:
		return Void{}, nil
	case abi.Bool:
		return Bool(f.Slot != 0), nil
	case abi.SignedInt:
		return Signed(int64(f.Slot)), nil
	case abi.UnsignedInt:
		return Unsigned(f.Slot), nil
	case abi.Float:
		return Float(math.Float64frombits(f.Slot)), nil
	case abi.Interned:
		return Ident(f.Slot), nil
	case abi.ErrorValue:
		return Err{Code: abi.Error(f.Slot)}, nil
	case abi.OwnedString, abi.StringRef:
		b, err := unpin[[]byte](f)
		if err != nil {
			return nil, err
		}
		if f.Flags.IsBoxed() {
			return String(b), nil
		}
		return StringRef(b), nil
	case abi.OwnedPath:
		p, err := unpin[intern.PathBuf](f)
		if err != nil {
			return nil, err
		}
		return PathBuf(p), nil
	case abi.PathRef:
		p, err := unpin[intern.Path](f)
		if err != nil {
			return nil, err
		}
		return PathRef{p}, nil
	case abi.BoxedNode, abi.NodeRef:
		rec, ok := lookupRecord(f.Slot)
		if !ok {
			return nil, fmt.Errorf("%w: no live node#%d", abi.ErrInvalidArgumentTypes, f.Slot)
		}
		if f.Flags.IsBoxed() {
			return Handle{rec: rec}, nil
		}
		return Ref{rec: rec}, nil
	case abi.OwnedArray, abi.ArrayRef:
		flats, err := unpin[[]abi.Flat](f)
		if err != nil {
			return nil, err
		}
		elems := make([]Value, len(flats))
		for i, ef := range flats {
			e, err := Decode(ef)
			if err != nil {
				Release(Array(elems[:i]))
				for _, rest := range flats[i+1:] {
					releaseDecodable(rest)
				}
				return nil, err
			}
			elems[i] = e
		}
		if f.Flags.IsBoxed() {
			return Array(elems), nil
		}
		return ArrayRef(elems), nil
	}
	return nil, fmt.Errorf("%w: %s", abi.ErrUnknownTypeFlags, f.Flags)
}

func unpin[T any](f abi.Flat) (T, error) {
	var zero T
	p, ok := abi.Unpin(f.Slot)
	if !ok {
		return zero, fmt.Errorf("%w: dangling %s payload %#x", abi.ErrInvalidArgumentTypes, f.Flags, f.Slot)
	}
	t, ok := p.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s payload holds %T", abi.ErrInvalidArgumentTypes, f.Flags, p)
	}
	if lenOf(t) != int(f.Length) {
		return zero, fmt.Errorf("%w: %s length %d, payload has %d", abi.ErrInvalidArgumentTypes, f.Flags, f.Length, lenOf(t))
	}
	return t, nil
}

func lenOf(p any) int {
	switch x := p.(type) {
	case []byte:
		return len(x)
	case intern.PathBuf:
		return len(x)
	case intern.Path:
		return x.Len()
	case []abi.Flat:
		return len(x)
	}
	return -1
}

func releaseDecodable(f abi.Flat) {
	if v, err := Decode(f); err == nil {
		Release(v)
	}
}

// ReleaseFlat consumes a flat nobody else will consume, dropping everything
// it owns.
func ReleaseFlat(f abi.Flat) {
	Release(FromFlat(f))
}
