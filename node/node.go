// Package node adapts Go types to the node dispatch protocol.
//
// A Node implements the operations; New wraps it in a record whose dispatch
// function decodes arguments, calls the Node and encodes results. Reference
// counting is handled by the record, so a Node never sees Clone or Drop.
package node

import (
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

type Node interface {
	// Get returns an owned copy of the value bound to key.
	Get(ns value.Namespace, key intern.Interned) (value.Value, error)
	// Set takes ownership of v and binds it to key, returning the value
	// previously bound, if any. When Set fails, v is released by the caller.
	Set(ns value.Namespace, key intern.Interned, v value.Value) (old value.Value, err error)
	// List returns the keys in ascending code order.
	List(ns value.Namespace) ([]intern.Interned, error)
	// Call takes ownership of arg.
	Call(ns value.Namespace, arg value.Value) (value.Value, error)
}

// Finalizer is implemented by nodes that hold resources. Finalize is called
// once, when the last handle to the node is dropped.
type Finalizer interface {
	Finalize()
}

// Unsupported answers every operation with abi.ErrActionNotSupported. Embed
// it to implement part of Node.
type Unsupported struct{}

func (Unsupported) Get(value.Namespace, intern.Interned) (value.Value, error) {
	return nil, abi.ErrActionNotSupported
}

func (Unsupported) Set(value.Namespace, intern.Interned, value.Value) (value.Value, error) {
	return nil, abi.ErrActionNotSupported
}

func (Unsupported) List(value.Namespace) ([]intern.Interned, error) {
	return nil, abi.ErrActionNotSupported
}

func (Unsupported) Call(_ value.Namespace, arg value.Value) (value.Value, error) {
	value.Release(arg)
	return nil, abi.ErrActionNotSupported
}

// Of returns the Node behind a record created by New.
func Of(r value.Ref) (Node, bool) {
	if r.IsNil() {
		return nil, false
	}
	n, ok := r.Record().State().(Node)
	return n, ok
}
