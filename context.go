package vnodes

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/signadot/vnodes/intern"
	"github.com/signadot/vnodes/mapnode"
	"github.com/signadot/vnodes/value"
)

// Context holds owning handles to a root and a current node. It is safe for
// concurrent use.
type Context struct {
	mu      sync.RWMutex
	root    value.Handle
	current value.Handle
	paths   *lru.Cache // string -> intern.PathBuf
}

// New returns a context whose root and current node are a fresh map node,
// unless WithRoot says otherwise.
func New(opts ...Option) *Context {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	root := cfg.root
	if root.IsNil() {
		root = mapnode.New()
	}
	c := &Context{root: root, current: root.Clone()}
	if cfg.pathCache > 0 {
		c.paths, _ = lru.New(cfg.pathCache)
	}
	return c
}

// Root returns a reference to the root node, valid until Close.
func (c *Context) Root() value.Ref {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root.Ref()
}

// Current returns a reference to the current node. It may be invalidated by
// a concurrent Chdir.
func (c *Context) Current() value.Ref {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Ref()
}

// Close releases the root and current node. Later operations return
// ErrClosed.
func (c *Context) Close() error {
	c.mu.Lock()
	root, current := c.root, c.current
	c.root, c.current = value.Handle{}, value.Handle{}
	c.mu.Unlock()
	if root.IsNil() {
		return ErrClosed
	}
	current.Drop()
	root.Drop()
	return nil
}

// Chdir makes the node at path the current node.
func (c *Context) Chdir(path string) error {
	p, err := c.parse(path)
	if err != nil {
		return err
	}
	var next value.Handle
	err = c.Resolve(p, func(v value.Value) error {
		r, ok := value.NodeOf(v)
		if !ok {
			return errExpectedNode(path)
		}
		next = r.ToOwned()
		return nil
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	old := c.current
	c.current = next
	c.mu.Unlock()
	old.Drop()
	return nil
}

// List returns the keys of the node at path.
func (c *Context) List(path string) ([]intern.Interned, error) {
	p, err := c.parse(path)
	if err != nil {
		return nil, err
	}
	var keys []intern.Interned
	err = c.Resolve(p, func(v value.Value) error {
		r, ok := value.NodeOf(v)
		if !ok {
			return errExpectedNode(path)
		}
		ks, err := r.List(c)
		keys = ks
		return err
	})
	return keys, err
}

// start returns an owning handle to the node a walk of p begins at.
func (c *Context) start(p intern.Path) (value.Handle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.root.IsNil() {
		return value.Handle{}, ErrClosed
	}
	if p.IsAbs() {
		return c.root.Clone(), nil
	}
	return c.current.Clone(), nil
}

func (c *Context) parse(path string) (intern.Path, error) {
	if c.paths != nil {
		if p, ok := c.paths.Get(path); ok {
			return p.(intern.PathBuf).Path(), nil
		}
	}
	p, err := intern.ParsePath(path)
	if err != nil {
		return intern.Path{}, err
	}
	if c.paths != nil {
		c.paths.Add(path, p)
	}
	return p.Path(), nil
}
