package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, err := optPath("ls", args)
	if err != nil {
		return err
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()
	keys, err := c.List(path)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(cc.Out, k)
	}
	return nil
}
