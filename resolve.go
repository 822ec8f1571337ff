package vnodes

import (
	"fmt"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

// Resolve walks p and calls fn with the value found. The value is only valid
// during fn. An empty path, or one ending in the empty segment, hands fn the
// node itself; walking through a value that is not a node fails with
// abi.ErrExpectedNode.
func (c *Context) Resolve(p intern.Path, fn func(value.Value) error) error {
	cur, err := c.start(p)
	if err != nil {
		return err
	}
	rest := p
	if p.IsAbs() {
		rest = p.Rest()
	}
	walked := intern.PathBuf{}
	if p.IsAbs() {
		walked.Push(intern.Empty)
	}
	for {
		key, tail, ok := rest.First()
		if !ok {
			err := fn(cur.Ref())
			cur.Drop()
			return err
		}
		rest = tail
		if key == intern.Empty {
			continue
		}
		walked.Push(key)
		if debug.Resolve() {
			debug.Logf("resolve %s at %s\n", walked, cur)
		}
		v, err := cur.Get(c, key)
		cur.Drop()
		if err != nil {
			return fmt.Errorf("%s: %w", walked, err)
		}
		if rest.IsEmpty() {
			err := fn(v)
			value.Release(v)
			return err
		}
		switch x := v.(type) {
		case value.Handle:
			cur = x
		case value.Ref:
			cur = x.ToOwned()
		default:
			value.Release(v)
			return errExpectedNode(walked.String())
		}
	}
}

func errExpectedNode(path string) error {
	return fmt.Errorf("%s: %w", path, abi.ErrExpectedNode)
}
