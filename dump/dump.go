// Package dump renders node trees: as YAML documents, as indented trees and
// as line diffs between two renderings.
package dump

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/value"
)

// Doc converts the tree under r to plain Go data: nodes become
// yaml.MapSlice in key order, arrays []any, scalars their Go types. A node
// reached again below itself renders as a "<cycle ...>" string.
func Doc(ns value.Namespace, r value.Ref) (any, error) {
	return docNode(ns, r, map[uint64]bool{})
}

// YAML is Doc encoded as YAML.
func YAML(ns value.Namespace, r value.Ref) ([]byte, error) {
	doc, err := Doc(ns, r)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Data converts a single value the way Doc converts a tree.
func Data(ns value.Namespace, v value.Value) (any, error) {
	return docValue(ns, v, map[uint64]bool{})
}

// ValueYAML is Data encoded as YAML.
func ValueYAML(ns value.Namespace, v value.Value) ([]byte, error) {
	doc, err := Data(ns, v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func docNode(ns value.Namespace, r value.Ref, seen map[uint64]bool) (any, error) {
	if seen[r.ID()] {
		return fmt.Sprintf("<cycle %s>", r), nil
	}
	seen[r.ID()] = true
	defer delete(seen, r.ID())
	keys, err := r.List(ns)
	if err != nil {
		if errors.Is(err, abi.ErrActionNotSupported) {
			return r.String(), nil
		}
		return nil, err
	}
	m := make(yaml.MapSlice, 0, len(keys))
	for _, k := range keys {
		v, err := r.Get(ns, k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		d, err := docValue(ns, v, seen)
		value.Release(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		m = append(m, yaml.MapItem{Key: k.String(), Value: d})
	}
	return m, nil
}

func docValue(ns value.Namespace, v value.Value, seen map[uint64]bool) (any, error) {
	switch x := v.(type) {
	case nil, value.Void:
		return nil, nil
	case value.Bool:
		return bool(x), nil
	case value.Signed:
		return int64(x), nil
	case value.Unsigned:
		return uint64(x), nil
	case value.Float:
		return float64(x), nil
	case value.Ident:
		return intern.Interned(x).String(), nil
	case value.String:
		return string(x), nil
	case value.StringRef:
		return string(x), nil
	case value.PathBuf:
		return intern.PathBuf(x).String(), nil
	case value.PathRef:
		return x.String(), nil
	case value.Handle:
		return docNode(ns, x.Ref(), seen)
	case value.Ref:
		return docNode(ns, x, seen)
	case value.Array:
		return docElems(ns, x, seen)
	case value.ArrayRef:
		return docElems(ns, x, seen)
	case value.Err:
		return value.Format(x), nil
	}
	return nil, fmt.Errorf("%w: cannot render %T", abi.ErrWrongType, v)
}

func docElems(ns value.Namespace, elems []value.Value, seen map[uint64]bool) (any, error) {
	res := make([]any, len(elems))
	for i, e := range elems {
		d, err := docValue(ns, e, seen)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		res[i] = d
	}
	return res, nil
}
