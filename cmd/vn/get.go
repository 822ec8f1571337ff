package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/value"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires 1 path, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()
	v, err := vnodes.Get[value.Value](c, args[0])
	if err != nil {
		return err
	}
	defer value.Release(v)
	if !cfg.YAML {
		_, err = fmt.Fprintln(cc.Out, value.Format(v))
		return err
	}
	d, err := dump.ValueYAML(c, v)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

// optPath returns the single optional path argument, the current node if
// absent.
func optPath(cmd string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: %s takes at most 1 path, got %v", cli.ErrUsage, cmd, args)
}
