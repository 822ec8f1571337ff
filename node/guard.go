package node

import (
	"sync"

	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

// Guard serializes access to n: Get, List and Call share a read lock, Set
// takes the write lock. n itself need not be safe for concurrent use.
func Guard(n Node) Node {
	return &guarded{n: n}
}

type guarded struct {
	sync.RWMutex
	n Node
}

func (g *guarded) Get(ns value.Namespace, key intern.Interned) (value.Value, error) {
	g.RLock()
	defer g.RUnlock()
	return g.n.Get(ns, key)
}

func (g *guarded) Set(ns value.Namespace, key intern.Interned, v value.Value) (value.Value, error) {
	g.Lock()
	defer g.Unlock()
	return g.n.Set(ns, key, v)
}

func (g *guarded) List(ns value.Namespace) ([]intern.Interned, error) {
	g.RLock()
	defer g.RUnlock()
	return g.n.List(ns)
}

func (g *guarded) Call(ns value.Namespace, arg value.Value) (value.Value, error) {
	g.RLock()
	defer g.RUnlock()
	return g.n.Call(ns, arg)
}

func (g *guarded) Finalize() {
	g.Lock()
	defer g.Unlock()
	if f, ok := g.n.(Finalizer); ok {
		f.Finalize()
	}
}

// Unguard returns the node wrapped by Guard, or n itself.
func Unguard(n Node) Node {
	if g, ok := n.(*guarded); ok {
		return g.n
	}
	return n
}
