package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Cache: 64}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "vn").
		WithSynopsis("vn [opts] command [opts]").
		WithDescription("vn navigates and edits trees of virtual nodes.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vnMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			ListCommand(cfg),
			DumpCommand(cfg),
			TreeCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-y] path").
		WithDescription("print the value at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-q] path value").
		WithDescription("bind a yaml value at path and print the resulting tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "ls").
		WithAliases("list").
		WithSynopsis("ls [path]").
		WithDescription("list the keys of the node at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [path]").
		WithDescription("print the tree at path as yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpTree(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithSynopsis("tree [path]").
		WithDescription("draw the tree at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "bind a variable visible to the expression",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val [ -e name2=val2 ]...] expr").
		WithDescription("evaluate an expression against the tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] file1 file2").
		WithDescription("load two documents and diff the resulting trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-gops]").
		WithDescription("serve the tree over json-rpc").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
