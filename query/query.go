// Package query evaluates expr-lang expressions against a context.
//
// Expressions see the functions
//
//	get(path)    the value at path; nodes read as maps
//	ls(path)     the keys of the node at path
//	exists(path) whether path resolves
//
// and any variables passed to Eval.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/abi"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/value"
)

// Eval compiles and runs src against c.
func Eval(c *vnodes.Context, src string, env map[string]any) (any, error) {
	if env == nil {
		env = map[string]any{}
	}
	prg, err := expr.Compile(src, append(exprOpts(c), expr.Env(env))...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Dispatch() {
		debug.Logf("query %q: %v\n", src, res)
	}
	return res, nil
}

func exprOpts(c *vnodes.Context) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			return get(c, params[0].(string))
		},
			new(func(string) any)),
		expr.Function("ls", func(params ...any) (any, error) {
			keys, err := c.List(params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]string, len(keys))
			for i, k := range keys {
				res[i] = k.String()
			}
			return res, nil
		},
			new(func(string) []string)),
		expr.Function("exists", func(params ...any) (any, error) {
			_, err := get(c, params[0].(string))
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, abi.ErrNoSuchEntry), errors.Is(err, abi.ErrExpectedNode):
				return false, nil
			}
			return nil, err
		},
			new(func(string) bool)),
	}
}

func get(c *vnodes.Context, path string) (any, error) {
	v, err := vnodes.Get[value.Value](c, path)
	if err != nil {
		return nil, err
	}
	defer value.Release(v)
	d, err := dump.Data(c, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plain(d), nil
}

// plain replaces ordered maps by maps, which expressions can index.
func plain(d any) any {
	switch x := d.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(x))
		for _, item := range x {
			m[fmt.Sprint(item.Key)] = plain(item.Value)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = plain(e)
		}
		return x
	}
	return d
}
