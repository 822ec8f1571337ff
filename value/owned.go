package value

import (
	"bytes"
	"errors"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/intern"
)

// MakeOwned takes ownership of v and returns a value with no borrowed parts,
// copying anything borrowed.
func MakeOwned(v Value) Value {
	switch x := v.(type) {
	case StringRef:
		return String(bytes.Clone(x))
	case PathRef:
		return PathBuf(x.ToOwned())
	case Ref:
		return x.ToOwned()
	case Array:
		for i, e := range x {
			x[i] = MakeOwned(e)
		}
		return x
	case ArrayRef:
		res := make(Array, len(x))
		for i, e := range x {
			res[i] = ownedCopy(e)
		}
		return res
	}
	return v
}

// ownedCopy copies an element of a borrowed array out of its storage.
func ownedCopy(v Value) Value {
	switch v.(type) {
	case StringRef, PathRef, Ref, ArrayRef:
		return MakeOwned(v)
	}
	return Clone(v)
}

// Clone duplicates v. Owned parts are copied, node handles gain a count unit
// and borrowed parts are shared.
func Clone(v Value) Value {
	switch x := v.(type) {
	case String:
		return String(bytes.Clone(x))
	case PathBuf:
		return PathBuf(intern.PathBuf(x).Clone())
	case Handle:
		return x.Clone()
	case Array:
		res := make(Array, len(x))
		for i, e := range x {
			res[i] = Clone(e)
		}
		return res
	}
	return v
}

// Release drops whatever v owns.
func Release(v Value) {
	switch x := v.(type) {
	case Handle:
		x.Drop()
	case Array:
		for _, e := range x {
			Release(e)
		}
	}
}

// IntoResult splits an error value from a regular one.
func IntoResult(v Value) (Value, error) {
	if e, ok := v.(Err); ok {
		return nil, e.Code
	}
	return v, nil
}

// FromResult is the inverse of IntoResult. Errors without an abi.Error code
// travel as abi.ErrActionNotSupported.
func FromResult(v Value, err error) Value {
	if err == nil {
		if v == nil {
			return Void{}
		}
		return v
	}
	Release(v)
	return Err{Code: ErrorCode(err)}
}

// ErrorCode returns the abi.Error in err's chain.
func ErrorCode(err error) abi.Error {
	var code abi.Error
	if errors.As(err, &code) {
		return code
	}
	if debug.Dispatch() {
		debug.Logf("uncoded error %v\n", err)
	}
	return abi.ErrActionNotSupported
}
