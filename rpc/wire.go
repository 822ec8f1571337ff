package rpc

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/mapnode"
	"github.com/signadot/vnodes/value"
)

// Value is the wire form of a value.
type Value struct {
	Kind  Kind            `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

type Kind string

const (
	KindVoid     Kind = "void"
	KindBool     Kind = "bool"
	KindSigned   Kind = "signed"
	KindUnsigned Kind = "unsigned"
	KindFloat    Kind = "float"
	KindIdent    Kind = "ident"
	KindString   Kind = "string"
	KindPath     Kind = "path"
	KindArray    Kind = "array"
	// KindNode carries the child keys of a node when read; inserting it
	// creates an empty node.
	KindNode  Kind = "node"
	KindError Kind = "error"
)

type PathParams struct {
	Path string `json:"path"`
}

type InsertParams struct {
	Path  string `json:"path"`
	Value Value  `json:"value"`
}

type ListResult struct {
	Keys []string `json:"keys"`
}

// Wire wraps a Go value as a wire value of the given kind.
func Wire(kind Kind, v any) (Value, error) {
	if v == nil {
		return Value{Kind: kind}, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: kind, Value: d}, nil
}

// Encode converts v to its wire form.
func Encode(ns value.Namespace, v value.Value) (Value, error) {
	switch x := v.(type) {
	case nil, value.Void:
		return Value{Kind: KindVoid}, nil
	case value.Bool:
		return Wire(KindBool, bool(x))
	case value.Signed:
		return Wire(KindSigned, int64(x))
	case value.Unsigned:
		return Wire(KindUnsigned, uint64(x))
	case value.Float:
		return Wire(KindFloat, float64(x))
	case value.Ident:
		return Wire(KindIdent, intern.Interned(x).String())
	case value.String:
		return Wire(KindString, string(x))
	case value.StringRef:
		return Wire(KindString, string(x))
	case value.PathBuf:
		return Wire(KindPath, intern.PathBuf(x).String())
	case value.PathRef:
		return Wire(KindPath, x.String())
	case value.Handle, value.Ref:
		r, _ := value.NodeOf(v)
		keys, err := r.List(ns)
		if err != nil {
			return Value{}, err
		}
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Wire(KindNode, names)
	case value.Array:
		return encodeElems(ns, x)
	case value.ArrayRef:
		return encodeElems(ns, x)
	case value.Err:
		return Wire(KindError, x.Code.Error())
	}
	return Value{}, fmt.Errorf("%w: no wire form for %T", abi.ErrWrongType, v)
}

func encodeElems(ns value.Namespace, elems []value.Value) (Value, error) {
	ws := make([]Value, len(elems))
	for i, e := range elems {
		w, err := Encode(ns, e)
		if err != nil {
			return Value{}, err
		}
		ws[i] = w
	}
	return Wire(KindArray, ws)
}

// Decode converts a wire value to an owned value.
func Decode(w Value) (value.Value, error) {
	switch w.Kind {
	case KindVoid:
		return value.Void{}, nil
	case KindNode:
		return mapnode.New(), nil
	case KindBool:
		var b bool
		err := w.unmarshal(&b)
		return value.Bool(b), err
	case KindSigned:
		var n int64
		err := w.unmarshal(&n)
		return value.Signed(n), err
	case KindUnsigned:
		var n uint64
		err := w.unmarshal(&n)
		return value.Unsigned(n), err
	case KindFloat:
		var f float64
		err := w.unmarshal(&f)
		return value.Float(f), err
	case KindIdent:
		var s string
		if err := w.unmarshal(&s); err != nil {
			return nil, err
		}
		code, err := intern.TryIntern(s)
		return value.Ident(code), err
	case KindString:
		var s string
		err := w.unmarshal(&s)
		return value.String(s), err
	case KindPath:
		var s string
		if err := w.unmarshal(&s); err != nil {
			return nil, err
		}
		p, err := intern.ParsePath(s)
		return value.PathBuf(p), err
	case KindArray:
		var ws []Value
		if err := w.unmarshal(&ws); err != nil {
			return nil, err
		}
		arr := make(value.Array, 0, len(ws))
		for _, ew := range ws {
			e, err := Decode(ew)
			if err != nil {
				value.Release(arr)
				return nil, err
			}
			arr = append(arr, e)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: wire kind %q", abi.ErrUnknownTypeFlags, w.Kind)
}

func (w Value) unmarshal(dst any) error {
	if len(w.Value) == 0 {
		return fmt.Errorf("%w: %s value missing", abi.ErrInvalidArgumentTypes, w.Kind)
	}
	if err := json.Unmarshal(w.Value, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", abi.ErrInvalidArgumentTypes, w.Kind, err)
	}
	return nil
}
