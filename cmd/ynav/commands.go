package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "engine",
			Aliases:     []string{"E"},
			Description: "yaml engine, see 'ynav engines'",
			Type:        cli.NamedFuncOpt(cfg.engineOpt, "(name)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ynav").
		WithSynopsis("ynav [opts] command [opts]").
		WithDescription("ynav navigates yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ynavMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ListCommand(cfg),
			TypeCommand(cfg),
			PosCommand(cfg),
			TreeCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
			EnginesCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [-t] <path> [files]").
		WithDescription("print the source text of the node at path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list <path> [files]").
		WithDescription("list the children of the nodes selected by path").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Type, "type").
		WithAliases("t").
		WithSynopsis("type <path> [files]").
		WithDescription("print the type and size of the node at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return typ(cfg, cc, args)
		})
}

func PosCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PosConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Pos, "pos").
		WithAliases("p").
		WithSynopsis("pos <path> [files]").
		WithDescription("print the start and end positions of the nodes selected by path").
		WithRun(func(cc *cli.Context, args []string) error {
			return pos(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("tr").
		WithSynopsis("tree [-m] [files]").
		WithDescription("print documents as a tree of types and scalars").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff yaml documents, exits 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-funcs] <expr> [files]").
		WithDescription("evaluate an expr-lang expression against documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ynavEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func EnginesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnginesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Engines, "engines").
		WithSynopsis("engines").
		WithDescription("list the available yaml engines").
		WithRun(func(cc *cli.Context, args []string) error {
			return engines(cfg, cc, args)
		})
}
