package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes/query"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()
	res, err := query.Eval(c, strings.Join(args, " "), cfg.Env)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFunc(env map[string]any, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: %s: %w", cli.ErrUsage, name, err)
	}
	env[name] = v
	return nil
}
