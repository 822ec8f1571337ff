package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/load"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := loadYAML(args[0])
	if err != nil {
		return err
	}
	to, err := loadYAML(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	differ, err := dump.Diff(cc.Out, from, to, cfg.colors(cc.Out))
	if err != nil {
		return err
	}
	if differ {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// loadYAML loads path into a tree of its own and dumps it back, so both
// sides of a diff are in the same canonical form.
func loadYAML(path string) (string, error) {
	h, err := load.File(path)
	if err != nil {
		return "", err
	}
	c := vnodes.New(vnodes.WithRoot(h))
	defer c.Close()
	d, err := dump.YAML(c, c.Root())
	if err != nil {
		return "", fmt.Errorf("error dumping %s: %w", path, err)
	}
	return string(d), nil
}
