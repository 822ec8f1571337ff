package dump

import (
	"fmt"
	"io"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/value"
)

// Tree writes an indented listing of the tree under r, headed by name.
// colors may be nil.
func Tree(w io.Writer, ns value.Namespace, r value.Ref, name string, colors *Colors) error {
	if _, err := fmt.Fprintln(w, colors.Color(abi.Node, KeyColor, name)); err != nil {
		return err
	}
	t := &treeWriter{w: w, ns: ns, colors: colors, seen: map[uint64]bool{}}
	return t.node(r, "")
}

type treeWriter struct {
	w      io.Writer
	ns     value.Namespace
	colors *Colors
	seen   map[uint64]bool
}

func (t *treeWriter) node(r value.Ref, indent string) error {
	t.seen[r.ID()] = true
	defer delete(t.seen, r.ID())
	keys, err := r.List(t.ns)
	if err != nil {
		return err
	}
	for i, k := range keys {
		branch, next := "├── ", "│   "
		if i == len(keys)-1 {
			branch, next = "└── ", "    "
		}
		prefix := indent + t.colors.Color(abi.Void, SepColor, branch)
		v, err := r.Get(t.ns, k)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		child, isNode := value.NodeOf(v)
		switch {
		case isNode && t.seen[child.ID()]:
			_, err = fmt.Fprintf(t.w, "%s%s %s\n", prefix, t.key(abi.Node, k.String()), t.colors.Color(abi.Err, ValueColor, "<cycle>"))
		case isNode:
			if _, err = fmt.Fprintf(t.w, "%s%s\n", prefix, t.key(abi.Node, k.String())); err == nil {
				err = t.node(child, indent+next)
			}
		default:
			_, err = fmt.Fprintf(t.w, "%s%s%s %s\n", prefix, t.key(v.Flags(), k.String()), t.colors.Color(abi.Void, SepColor, ":"), t.colors.Color(v.Flags(), ValueColor, value.Format(v)))
		}
		value.Release(v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *treeWriter) key(kind abi.Flags, s string) string {
	return t.colors.Color(kind, KeyColor, s)
}
