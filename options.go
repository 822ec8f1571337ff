package vnodes

import "github.com/signadot/vnodes/value"

type config struct {
	root      value.Handle
	pathCache int
}

type Option func(*config)

// WithRoot makes h, whose ownership moves to the context, the root node.
func WithRoot(h value.Handle) Option {
	return func(c *config) { c.root = h }
}

// WithPathCache keeps the n most recently parsed path strings.
func WithPathCache(n int) Option {
	return func(c *config) { c.pathCache = n }
}
