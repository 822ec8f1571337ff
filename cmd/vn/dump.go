package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/value"
)

func dumpTree(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, err := optPath("dump", args)
	if err != nil {
		return err
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()
	v, err := vnodes.Get[value.Value](c, path)
	if err != nil {
		return err
	}
	defer value.Release(v)
	d, err := dump.ValueYAML(c, v)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
