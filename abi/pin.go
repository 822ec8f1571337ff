package abi

import (
	"sync"
	"sync/atomic"
)

var (
	pins    sync.Map // uint64 -> any
	lastPin atomic.Uint64
)

// Pin registers v and returns the pin to store in a flat slot.
func Pin(v any) uint64 {
	h := lastPin.Add(1)
	pins.Store(h, v)
	return h
}

// Pinned returns the value registered under h without releasing it.
func Pinned(h uint64) (any, bool) {
	return pins.Load(h)
}

// Unpin releases h and returns the value it held.
func Unpin(h uint64) (any, bool) {
	return pins.LoadAndDelete(h)
}

// Pins returns the number of live pins.
func Pins() int {
	n := 0
	pins.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
