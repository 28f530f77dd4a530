package main

import (
	"fmt"

	"github.com/signadot/yamlnav/engine"

	"github.com/scott-cotton/cli"
)

func engines(cfg *EnginesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Engines.Parse(cc, args)
	if err != nil {
		cfg.Engines.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: engines takes no arguments", cli.ErrUsage)
	}
	for _, name := range engine.Names() {
		mark := ""
		if name == engine.Default.Name() {
			mark = " (default)"
		}
		fmt.Fprintf(cc.Out, "%s%s\n", name, mark)
	}
	return nil
}
