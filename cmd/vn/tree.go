package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/value"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, err := optPath("tree", args)
	if err != nil {
		return err
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()
	h, err := vnodes.Get[value.Handle](c, path)
	if err != nil {
		return err
	}
	defer h.Drop()
	name := path
	if name == "" {
		name = "."
	}
	return dump.Tree(cc.Out, c, h.Ref(), name, cfg.colors(cc.Out))
}
