package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/engine"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	All   bool `cli:"name=a aliases=all desc='process every document of each file'"`

	Engine engine.Engine

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) engineOpt(_ *cli.Context, v string) (any, error) {
	e, err := engine.Lookup(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Engine = e
	return e.Name(), nil
}

func (cfg *MainConfig) loadOpts() []yamlnav.LoadOption {
	if cfg.Engine == nil {
		return nil
	}
	return []yamlnav.LoadOption{yamlnav.LoadEngine(cfg.Engine)}
}

// colors returns the output colors for w: the -color flag if given,
// otherwise colors when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return NoColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return NoColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return NoColors()
}

type GetConfig struct {
	*MainConfig
	Text bool `cli:"name=t aliases=text desc='print resolved scalar text instead of source'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type TypeConfig struct {
	*MainConfig

	Type *cli.Command
}

type PosConfig struct {
	*MainConfig

	Pos *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Marks bool `cli:"name=m aliases=marks desc='show start and end positions'"`

	Tree *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Funcs bool `cli:"name=funcs desc='show available functions'"`

	Eval *cli.Command
}

type EnginesConfig struct {
	*MainConfig

	Engines *cli.Command
}
