package vnodes

import (
	"sync"
	"sync/atomic"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

var (
	exports    sync.Map // uintptr -> *Context
	lastExport atomic.Uintptr
)

// Export registers c for foreign callers and returns its opaque id.
func (c *Context) Export() uintptr {
	id := lastExport.Add(1)
	exports.Store(id, c)
	return id
}

// Exported returns the context registered under id.
func Exported(id uintptr) (*Context, bool) {
	c, ok := exports.Load(id)
	if !ok {
		return nil, false
	}
	return c.(*Context), true
}

// Unexport removes id from the registry and returns its context.
func Unexport(id uintptr) (*Context, bool) {
	c, ok := exports.LoadAndDelete(id)
	if !ok {
		return nil, false
	}
	return c.(*Context), true
}

// ContextInsert binds the flat value f under ident in the root of the context
// registered as id. It takes ownership of f and returns a void or error flat.
func ContextInsert(id uintptr, ident intern.Interned, f abi.Flat) abi.Flat {
	v, err := value.Decode(f)
	if err != nil {
		return abi.ErrorFlat(value.ErrorCode(err))
	}
	c, ok := Exported(id)
	if !ok {
		value.Release(v)
		return abi.ErrorFlat(abi.ErrInvalidArgumentTypes)
	}
	if ident == intern.Empty {
		value.Release(v)
		return abi.ErrorFlat(abi.ErrPathEmpty)
	}
	root, err := c.start(intern.PathOf(intern.Empty))
	if err != nil {
		value.Release(v)
		return abi.ErrorFlat(abi.ErrActionNotSupported)
	}
	defer root.Drop()
	return value.ToFlat(value.FromResult(nil, root.Set(c, ident, v)))
}
