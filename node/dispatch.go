package node

import (
	"fmt"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

// New returns a handle to a fresh record dispatching to n.
func New(n Node) value.Handle {
	return value.NewRecord(n, dispatch)
}

func dispatch(self *value.Record, ns value.Namespace, op abi.Op, arg abi.Flat) abi.Flat {
	n := self.State().(Node)
	if debug.Dispatch() {
		debug.Logf("dispatch node#%d %T %s %s\n", self.ID(), n, op, arg)
	}
	switch op {
	case abi.Clone:
		value.ReleaseFlat(arg)
		self.Incr()
		return abi.VoidFlat()
	case abi.Drop:
		value.ReleaseFlat(arg)
		self.Decr(finalize)
		return abi.VoidFlat()
	case abi.Get:
		if arg.Flags != abi.Interned {
			value.ReleaseFlat(arg)
			return abi.ErrorFlat(abi.ErrInvalidArgumentTypes)
		}
		return result(n.Get(ns, intern.Interned(arg.Slot)))
	case abi.Set:
		return set(n, ns, value.FromFlat(arg))
	case abi.List:
		value.ReleaseFlat(arg)
		keys, err := n.List(ns)
		if err != nil {
			return result(nil, err)
		}
		return value.ToFlat(value.PathBuf(keys))
	case abi.Call:
		return result(n.Call(ns, value.FromFlat(arg)))
	}
	panic(fmt.Sprintf("node: unknown op %s on node#%d", op, self.ID()))
}

func set(n Node, ns value.Namespace, arg value.Value) abi.Flat {
	args, ok := arg.(value.Array)
	if !ok || len(args) != 2 {
		value.Release(arg)
		return abi.ErrorFlat(abi.ErrInvalidArgumentTypes)
	}
	key, ok := args[0].(value.Ident)
	if !ok {
		value.Release(args)
		return abi.ErrorFlat(abi.ErrInvalidArgumentTypes)
	}
	v := value.MakeOwned(args[1])
	old, err := n.Set(ns, intern.Interned(key), v)
	if err != nil {
		value.Release(v)
		return result(nil, err)
	}
	value.Release(old)
	return abi.VoidFlat()
}

func result(v value.Value, err error) abi.Flat {
	return value.ToFlat(value.FromResult(v, err))
}

func finalize(state any) {
	if f, ok := state.(Finalizer); ok {
		f.Finalize()
	}
}
