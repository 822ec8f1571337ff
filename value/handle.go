package value

import (
	"fmt"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
)

// Handle owns one unit of a node's strong count. A Handle must be dropped
// exactly once, or moved into a flat or container that will drop it.
type Handle struct {
	rec *Record
}

// Ref designates a node without owning a count unit. It is valid only while
// some owner keeps the node alive.
type Ref struct {
	rec *Record
}

func (h Handle) IsNil() bool {
	return h.rec == nil
}

func (h Handle) Record() *Record {
	return h.rec
}

func (h Handle) ID() uint64 {
	return h.rec.id
}

// Ref borrows h.
func (h Handle) Ref() Ref {
	return Ref{rec: h.rec}
}

// Clone returns a new handle to the same node.
func (h Handle) Clone() Handle {
	ReleaseFlat(h.rec.Dispatch(nil, abi.Clone, abi.VoidFlat()))
	return Handle{rec: h.rec}
}

// Drop gives up h's count unit.
func (h Handle) Drop() {
	ReleaseFlat(h.rec.Dispatch(nil, abi.Drop, abi.VoidFlat()))
}

func (h Handle) Get(ns Namespace, key intern.Interned) (Value, error) {
	return h.Ref().Get(ns, key)
}

func (h Handle) Set(ns Namespace, key intern.Interned, v Value) error {
	return h.Ref().Set(ns, key, v)
}

func (h Handle) List(ns Namespace) (intern.PathBuf, error) {
	return h.Ref().List(ns)
}

func (h Handle) Call(ns Namespace, arg Value) (Value, error) {
	return h.Ref().Call(ns, arg)
}

func (h Handle) String() string {
	if h.rec == nil {
		return "node#nil"
	}
	return fmt.Sprintf("node#%d", h.rec.id)
}

func (r Ref) IsNil() bool {
	return r.rec == nil
}

func (r Ref) Record() *Record {
	return r.rec
}

func (r Ref) ID() uint64 {
	return r.rec.id
}

// ToOwned clones the designated node into an owning handle.
func (r Ref) ToOwned() Handle {
	return Handle{rec: r.rec}.Clone()
}

// Get returns an owned copy of the value under key.
func (r Ref) Get(ns Namespace, key intern.Interned) (Value, error) {
	res := r.rec.Dispatch(ns, abi.Get, abi.InternedFlat(uint64(key)))
	return IntoResult(FromFlat(res))
}

// Set stores v under key. Ownership of v moves to the node, whether or not
// the call succeeds.
func (r Ref) Set(ns Namespace, key intern.Interned, v Value) error {
	arg := ToFlat(Array{Ident(key), v})
	res := FromFlat(r.rec.Dispatch(ns, abi.Set, arg))
	_, err := IntoResult(res)
	Release(res)
	return err
}

// List returns the keys of the node in ascending code order.
func (r Ref) List(ns Namespace) (intern.PathBuf, error) {
	v, err := IntoResult(FromFlat(r.rec.Dispatch(ns, abi.List, abi.VoidFlat())))
	if err != nil {
		return nil, err
	}
	return As[intern.PathBuf](v)
}

// Call invokes the node with arg, whose ownership moves to the node.
func (r Ref) Call(ns Namespace, arg Value) (Value, error) {
	return IntoResult(FromFlat(r.rec.Dispatch(ns, abi.Call, ToFlat(arg))))
}

func (r Ref) String() string {
	if r.rec == nil {
		return "&node#nil"
	}
	return fmt.Sprintf("&node#%d", r.rec.id)
}
