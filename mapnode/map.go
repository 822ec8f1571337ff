// Package mapnode provides the default in-memory node: children stored as two
// parallel slices sorted by interned key.
package mapnode

import (
	"slices"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/node"
	"github.com/signadot/vnodes/value"
)

// Map holds keys strictly ascending, with vals[i] bound to keys[i]. Map does
// no locking; New guards it.
type Map struct {
	node.Unsupported
	keys []intern.Interned
	vals []value.Value
}

// New returns a handle to an empty, guarded Map node.
func New() value.Handle {
	return node.New(node.Guard(&Map{}))
}

func (m *Map) Len() int {
	return len(m.keys)
}

func (m *Map) Get(_ value.Namespace, key intern.Interned) (value.Value, error) {
	i, ok := SearchBucketed(m.keys, key)
	if !ok {
		return nil, abi.ErrNoSuchEntry
	}
	return value.Clone(m.vals[i]), nil
}

func (m *Map) Set(_ value.Namespace, key intern.Interned, v value.Value) (value.Value, error) {
	i, ok := SearchBucketed(m.keys, key)
	if ok {
		old := m.vals[i]
		m.vals[i] = v
		return old, nil
	}
	m.keys = slices.Insert(m.keys, i, key)
	m.vals = slices.Insert(m.vals, i, v)
	return nil, nil
}

func (m *Map) List(value.Namespace) ([]intern.Interned, error) {
	return slices.Clone(m.keys), nil
}

func (m *Map) Finalize() {
	for _, v := range m.vals {
		value.Release(v)
	}
	m.keys, m.vals = nil, nil
}
