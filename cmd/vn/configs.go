package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/dump"
	"github.com/signadot/vnodes/fsnode"
	"github.com/signadot/vnodes/load"
)

type MainConfig struct {
	File  string `cli:"name=f desc='load the root from a yaml or json file'"`
	Patch string `cli:"name=patch desc='json patch file applied to -f before loading'"`
	Mount string `cli:"name=mount desc='mount a directory read-only at /fs'"`
	Color bool   `cli:"name=color desc='output with color'"`
	Cache int    `cli:"name=cache desc='size of the parsed path cache' default=64"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// newContext builds the tree the subcommands operate on.
func (cfg *MainConfig) newContext() (*vnodes.Context, error) {
	c := vnodes.New(vnodes.WithPathCache(cfg.Cache))
	if cfg.File != "" {
		d, err := os.ReadFile(cfg.File)
		if err != nil {
			c.Close()
			return nil, err
		}
		var opts []load.Option
		if cfg.Patch != "" {
			p, err := os.ReadFile(cfg.Patch)
			if err != nil {
				c.Close()
				return nil, err
			}
			opts = append(opts, load.WithPatch(p))
		}
		if err := load.Into(c, c.Root(), d, opts...); err != nil {
			c.Close()
			return nil, fmt.Errorf("could not load %s: %w", cfg.File, err)
		}
		theLog.Debug("loaded", "file", cfg.File)
	}
	if cfg.Mount != "" {
		h, err := fsnode.Open(cfg.Mount)
		if err != nil {
			c.Close()
			return nil, err
		}
		if err := vnodes.Insert(c, "/fs", h); err != nil {
			c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (cfg *MainConfig) colors(w io.Writer) *dump.Colors {
	if cfg.Color {
		return dump.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return nil
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return dump.NewColors()
	}
	return nil
}

type GetConfig struct {
	*MainConfig
	YAML bool `cli:"name=y aliases=yaml desc='print the value as yaml'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='do not print the resulting tree'"`

	Set *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr string `cli:"name=addr desc='TCP listen address, stdio if empty'"`
	Gops bool   `cli:"name=gops desc='start a gops agent'"`

	Serve *cli.Command
}
