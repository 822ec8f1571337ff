package vnodes

import (
	"fmt"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

// Get returns the value at path converted to T.
func Get[T any](c *Context, path string) (T, error) {
	p, err := c.parse(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return GetPath[T](c, p)
}

func GetPath[T any](c *Context, p intern.Path) (T, error) {
	var out T
	err := c.Resolve(p, func(v value.Value) error {
		owned := value.MakeOwned(value.Clone(v))
		x, err := value.As[T](owned)
		if err != nil {
			value.Release(owned)
			return fmt.Errorf("%s: %w", p, err)
		}
		out = x
		return nil
	})
	return out, err
}

// Insert binds x at path. The node at the parent of path must exist; node
// handles in x move into the tree.
func Insert[T any](c *Context, path string, x T) error {
	p, err := c.parse(path)
	if err != nil {
		if v, ok := any(x).(value.Value); ok {
			value.Release(v)
		}
		return err
	}
	return InsertPath(c, p, x)
}

func InsertPath[T any](c *Context, p intern.Path, x T) error {
	v, err := value.Of(x)
	if err != nil {
		return err
	}
	parent, last, ok := p.Split()
	if !ok || last == intern.Empty {
		value.Release(v)
		return fmt.Errorf("insert %q: %w", p, abi.ErrPathEmpty)
	}
	moved := false
	err = c.Resolve(parent, func(pv value.Value) error {
		r, ok := value.NodeOf(pv)
		if !ok {
			return errExpectedNode(parent.String())
		}
		moved = true
		return r.Set(c, last, v)
	})
	if !moved {
		value.Release(v)
	}
	return err
}
