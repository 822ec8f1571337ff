// Package load builds node trees from YAML or JSON documents.
//
// Mappings become map nodes, sequences arrays, and scalars the matching
// value case: positive integers unsigned, negative ones signed. Mapping keys
// must intern.
package load

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/mapnode"
	"github.com/signadot/vnodes/value"
)

type config struct {
	patch []byte
}

type Option func(*config)

// WithPatch applies an RFC 6902 patch, in YAML or JSON, to the document
// before it is loaded.
func WithPatch(patch []byte) Option {
	return func(c *config) { c.patch = patch }
}

// New returns a fresh map node holding the top-level mapping of doc.
func New(doc []byte, opts ...Option) (value.Handle, error) {
	h := mapnode.New()
	if err := Into(nil, h.Ref(), doc, opts...); err != nil {
		h.Drop()
		return value.Handle{}, err
	}
	return h, nil
}

// File is New for the contents of path.
func File(path string, opts ...Option) (value.Handle, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return value.Handle{}, err
	}
	h, err := New(d, opts...)
	if err != nil {
		return value.Handle{}, fmt.Errorf("could not load %s: %w", path, err)
	}
	return h, nil
}

// Into sets every binding of the top-level mapping of doc in dst.
func Into(ns value.Namespace, dst value.Ref, doc []byte, opts ...Option) error {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.patch != nil {
		d, err := Patch(doc, cfg.patch)
		if err != nil {
			return err
		}
		doc = d
	}
	var top any
	if err := yaml.UnmarshalWithOptions(doc, &top, yaml.UseOrderedMap()); err != nil {
		return err
	}
	m, ok := top.(yaml.MapSlice)
	if !ok {
		if top == nil {
			return nil
		}
		return fmt.Errorf("%w, got %T", ErrNotMapping, top)
	}
	return setAll(ns, dst, intern.PathBuf{intern.Empty}, m)
}

// Scalar converts a single YAML value, as given on a command line.
func Scalar(s string) (value.Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(s), &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return convert(nil, intern.PathBuf{}, v)
}

func setAll(ns value.Namespace, dst value.Ref, at intern.PathBuf, m yaml.MapSlice) error {
	for _, item := range m {
		name := fmt.Sprint(item.Key)
		key, err := intern.TryIntern(name)
		if err != nil {
			return fmt.Errorf("key %q at %s: %w", name, at, err)
		}
		p := at.Clone()
		p.Push(key)
		if debug.Load() {
			debug.Logf("load %s: %T\n", p, item.Value)
		}
		v, err := convert(ns, p, item.Value)
		if err != nil {
			return err
		}
		if err := dst.Set(ns, key, v); err != nil {
			return fmt.Errorf("set %s: %w", p, err)
		}
	}
	return nil
}

func convert(ns value.Namespace, at intern.PathBuf, v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Void{}, nil
	case yaml.MapSlice:
		h := mapnode.New()
		if err := setAll(ns, h.Ref(), at, x); err != nil {
			h.Drop()
			return nil, err
		}
		return h, nil
	case []any:
		arr := make(value.Array, 0, len(x))
		for i, e := range x {
			ev, err := convert(ns, at, e)
			if err != nil {
				value.Release(arr)
				return nil, fmt.Errorf("%s[%d]: %w", at, i, err)
			}
			arr = append(arr, ev)
		}
		return arr, nil
	}
	res, err := value.Of(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	return res, nil
}
