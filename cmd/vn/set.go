package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/load"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: set requires a path and a value, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()
	v, err := load.Scalar(args[1])
	if err != nil {
		return fmt.Errorf("error decoding %q: %w", args[1], err)
	}
	if err := vnodes.Insert(c, args[0], v); err != nil {
		return err
	}
	theLog.Debug("set", "path", args[0])
	if cfg.Quiet {
		return nil
	}
	d, err := dump.YAML(c, c.Root())
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
