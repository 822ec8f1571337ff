package value

import (
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
)

// Namespace is the resolution context a node operation runs under.
type Namespace interface {
	Root() Ref
	Current() Ref
}

// DispatchFunc implements every operation of a node. It takes ownership of
// arg and transfers ownership of the returned flat to the caller.
type DispatchFunc func(self *Record, ns Namespace, op abi.Op, arg abi.Flat) abi.Flat

// Record is the shared allocation behind a node: its dispatch function, its
// implementation state and its strong count.
type Record struct {
	dispatch DispatchFunc
	state    any
	strong   atomic.Uint64
	id       uint64
}

var (
	records    sync.Map // uint64 -> *Record
	lastRecord atomic.Uint64
)

// abort terminates the process. Tests replace it.
var abort = func(msg string) {
	fmt.Fprintf(os.Stderr, "vnodes: fatal: %s\n", msg)
	os.Exit(134)
}

// NewRecord allocates a record with a strong count of one and returns the
// handle owning that unit.
func NewRecord(state any, dispatch DispatchFunc) Handle {
	if dispatch == nil {
		panic("value: nil dispatch function")
	}
	r := &Record{
		dispatch: dispatch,
		state:    state,
		id:       lastRecord.Add(1),
	}
	r.strong.Store(1)
	records.Store(r.id, r)
	return Handle{rec: r}
}

func lookupRecord(id uint64) (*Record, bool) {
	r, ok := records.Load(id)
	if !ok {
		return nil, false
	}
	return r.(*Record), true
}

// LiveRecords returns the number of records not yet destroyed.
func LiveRecords() int {
	n := 0
	records.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (r *Record) ID() uint64 {
	return r.id
}

// State returns the implementation state given to NewRecord.
func (r *Record) State() any {
	return r.state
}

// Strong returns the current strong count.
func (r *Record) Strong() uint64 {
	return r.strong.Load()
}

// Dispatch calls the record's dispatch function.
func (r *Record) Dispatch(ns Namespace, op abi.Op, arg abi.Flat) abi.Flat {
	dispatch := r.dispatch
	if dispatch == nil {
		panic(fmt.Sprintf("value: %s on destroyed node#%d", op, r.id))
	}
	return dispatch(r, ns, op, arg)
}

// Incr adds one unit to the strong count. A count past math.MaxInt64 aborts
// the process.
func (r *Record) Incr() {
	old := r.strong.Add(1) - 1
	if debug.Refcount() {
		debug.Logf("refcount node#%d %d -> %d\n", r.id, old, old+1)
	}
	if old > math.MaxInt64 {
		abort(fmt.Sprintf("node#%d reference count overflow", r.id))
	}
}

// Decr removes one unit from the strong count. When the count reaches zero
// the record is removed from the registry, finalize is called with its state,
// and later dispatch panics. Decr reports whether it destroyed the record.
func (r *Record) Decr(finalize func(state any)) bool {
	n := r.strong.Add(^uint64(0))
	if debug.Refcount() {
		debug.Logf("refcount node#%d %d -> %d\n", r.id, n+1, n)
	}
	if n != 0 {
		return false
	}
	records.Delete(r.id)
	state := r.state
	r.state = nil
	r.dispatch = nil
	if finalize != nil {
		finalize(state)
	}
	return true
}
