// Package fsnode exposes a directory tree as read-only nodes. Directories are
// nodes; regular files read as owned strings of their contents. Entries whose
// names cannot be interned are not reachable.
package fsnode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"

	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/node"
	"github.com/signadot/vnodes/value"
)

// Dir is the node for one directory of an fs.FS.
type Dir struct {
	node.Unsupported
	fsys fs.FS
	dir  string
}

// New returns a handle to the root directory of fsys.
func New(fsys fs.FS) value.Handle {
	return node.New(&Dir{fsys: fsys, dir: "."})
}

// Open returns a handle to the directory at name in the host file system.
func Open(name string) (value.Handle, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return value.Handle{}, err
	}
	if !fi.IsDir() {
		return value.Handle{}, fmt.Errorf("%s: %w", name, ErrNotDir)
	}
	return New(os.DirFS(name)), nil
}

func (d *Dir) Get(_ value.Namespace, key intern.Interned) (value.Value, error) {
	name, err := d.lookup(key)
	if err != nil {
		return nil, err
	}
	p := path.Join(d.dir, name)
	fi, err := fs.Stat(d.fsys, p)
	if err != nil {
		return nil, mapErr(err)
	}
	if fi.IsDir() {
		return node.New(&Dir{fsys: d.fsys, dir: p}), nil
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", abi.ErrWrongType, p)
	}
	data, err := fs.ReadFile(d.fsys, p)
	if err != nil {
		return nil, mapErr(err)
	}
	return value.String(data), nil
}

func (d *Dir) List(value.Namespace) ([]intern.Interned, error) {
	ents, err := fs.ReadDir(d.fsys, d.dir)
	if err != nil {
		return nil, mapErr(err)
	}
	keys := make([]intern.Interned, 0, len(ents))
	for _, ent := range ents {
		key, err := intern.TryIntern(ent.Name())
		if err != nil {
			if debug.Dispatch() {
				debug.Logf("fsnode: skipping %s: %v\n", path.Join(d.dir, ent.Name()), err)
			}
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// lookup finds the entry name interning to key. Names fold case, so an entry
// spelled differently from key.String() is found by scanning.
func (d *Dir) lookup(key intern.Interned) (string, error) {
	name := key.String()
	if _, err := fs.Stat(d.fsys, path.Join(d.dir, name)); err == nil {
		return name, nil
	}
	ents, err := fs.ReadDir(d.fsys, d.dir)
	if err != nil {
		return "", mapErr(err)
	}
	for _, ent := range ents {
		if k, err := intern.TryIntern(ent.Name()); err == nil && k == key {
			return ent.Name(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", abi.ErrNoSuchEntry, path.Join(d.dir, name))
}

func mapErr(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", abi.ErrNoSuchEntry, err)
	}
	return fmt.Errorf("%w: %v", abi.ErrActionNotSupported, err)
}
