// Command libvnodes builds the C ABI of vnodes as a shared library:
//
//	go build -buildmode=c-shared -o libvnodes.so ./cmd/libvnodes
//
// Contexts are referred to by opaque ids. Values cross the boundary as
// vnodes_flat structs; flats returned by the library are owned by the caller
// and must be passed back to vnodes_flat_release.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef struct {
	uint32_t flags;
	uint32_t length;
	uint64_t slot;
} vnodes_flat;
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

func main() {}

// cLen converts a C length for use as a C.int, rejecting lengths above limit.
func cLen(n uint64, limit int) (int, bool) {
	if n > uint64(limit) {
		return 0, false
	}
	return int(n), true
}

func toFlat(f C.vnodes_flat) abi.Flat {
	return abi.Flat{Flags: abi.Flags(f.flags), Length: uint32(f.length), Slot: uint64(f.slot)}
}

func fromFlat(f abi.Flat) C.vnodes_flat {
	return C.vnodes_flat{flags: C.uint32_t(f.Flags), length: C.uint32_t(f.Length), slot: C.uint64_t(f.Slot)}
}

//export vnodes_context_new
func vnodes_context_new() C.uintptr_t {
	id := vnodes.New().Export()
	if debug.Dispatch() {
		debug.Logf("libvnodes: new context %d\n", id)
	}
	return C.uintptr_t(id)
}

// vnodes_context_free returns 0, or -1 if id names no context.
//
//export vnodes_context_free
func vnodes_context_free(id C.uintptr_t) C.int {
	c, ok := vnodes.Unexport(uintptr(id))
	if !ok {
		return -1
	}
	c.Close()
	return 0
}

//export vnodes_context_insert
func vnodes_context_insert(id C.uintptr_t, ident C.uint64_t, f C.vnodes_flat) C.vnodes_flat {
	return fromFlat(vnodes.ContextInsert(uintptr(id), intern.Interned(ident), toFlat(f)))
}

// vnodes_context_insert_string copies n bytes at s into a string value and
// binds it under ident. Lengths past math.MaxInt32 give an invalid argument
// error flat.
//
//export vnodes_context_insert_string
func vnodes_context_insert_string(id C.uintptr_t, ident C.uint64_t, s *C.char, n C.size_t) C.vnodes_flat {
	l, ok := cLen(uint64(n), math.MaxInt32)
	if !ok {
		return fromFlat(abi.ErrorFlat(abi.ErrInvalidArgumentTypes))
	}
	var b []byte
	if l > 0 {
		b = C.GoBytes(unsafe.Pointer(s), C.int(l))
	}
	f := value.ToFlat(value.String(b))
	return fromFlat(vnodes.ContextInsert(uintptr(id), intern.Interned(ident), f))
}

// vnodes_intern stores the code of the n bytes at s in out. It returns 0, or
// the wrong type error code if they do not intern. s is not read when n
// exceeds the longest identifier.
//
//export vnodes_intern
func vnodes_intern(s *C.char, n C.size_t, out *C.uint64_t) C.int {
	l, ok := cLen(uint64(n), intern.MaxLen)
	if !ok {
		return C.int(abi.ErrWrongType)
	}
	code, err := intern.TryIntern(C.GoStringN(s, C.int(l)))
	if err != nil {
		return C.int(abi.ErrWrongType)
	}
	*out = C.uint64_t(code)
	return 0
}

//export vnodes_flat_release
func vnodes_flat_release(f C.vnodes_flat) {
	v, err := value.Decode(toFlat(f))
	if err != nil {
		return
	}
	value.Release(v)
}
