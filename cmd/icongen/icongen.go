package main

import (
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/toastate/icongen/internal/server"
	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/internal/watcher"
	"github.com/toastate/icongen/pkg/config"
	"github.com/toastate/icongen/pkg/generator"
)

var CLI struct {
	Generate CommandGenerate `cmd:"" default:"1" aliases:"g" help:"Generates the icon library."`
	Watch    CommandWatch    `cmd:"" aliases:"w" help:"Generates, then regenerates on every icon change."`
	Serve    CommandServe    `cmd:"" aliases:"s" help:"Run a preview gallery of the icons."`

	ConfigFile string `short:"c" help:"configuration file path (optional, defaults to icongen.json)"`
}

type DirFlags struct {
	IconsDir string `help:"Icons directory, one subfolder per variant." env:"ICONGEN_ICONS_DIR"`
	OutDir   string `help:"Output directory of the generated sources." env:"ICONGEN_OUT_DIR"`
}

type CommandGenerate struct {
	DirFlags `embed:""`

	Verbose int `short:"v" help:"Print verbose output." type:"counter"`
}

type CommandWatch struct {
	DirFlags `embed:""`

	Verbose int `short:"v" help:"Print verbose output." type:"counter"`
}

type CommandServe struct {
	DirFlags `embed:""`
	Watch    bool `negatable:"" default:"true" help:"Regenerate on icon changes."`

	Port int `short:"p" help:"Listener port" env:"ICONGEN_PORT"`

	Verbose int `short:"v" help:"Print verbose output." type:"counter"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.UsageOnError())

	err := config.Init(CLI.ConfigFile)
	if err != nil {
		log.Fatal(err)
	}

	err = ctx.Run(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func applyVerbose(v int) {
	switch v {
	case 0:
		tlogger.ApplyLogLevel("info")
	case 1:
		tlogger.ApplyLogLevel("debug")
	default:
		tlogger.ApplyLogLevel("all")
	}
}

func (r *CommandGenerate) Run(ctx *kong.Context) error {
	applyVerbose(r.Verbose)

	gen := generator.NewGenerator(r.IconsDir, r.OutDir, config.Config)
	return gen.Generate()
}

func (r *CommandWatch) Run(ctx *kong.Context) error {
	applyVerbose(r.Verbose)

	gen := generator.NewGenerator(r.IconsDir, r.OutDir, config.Config)
	err := gen.Generate()
	if err != nil {
		return err
	}

	updates, err := watcher.StartWatcher(gen.IconsDir())
	if err != nil {
		tlogger.Error("msg", "Could not start watcher", "path", gen.IconsDir(), "err", err)
		return err
	}
	gen.Watch(updates, nil)
	return nil
}

func (r *CommandServe) Run(ctx *kong.Context) error {
	applyVerbose(r.Verbose)

	if r.Port <= 0 {
		r.Port = config.Config.ServeConfig.Port
	}

	serv := server.NewServer(r.IconsDir, r.OutDir, strconv.Itoa(r.Port), config.Config)
	err := serv.Start(r.Watch)
	if err != nil {
		tlogger.Error("msg", "Server stopped", "err", err)
	}
	return err
}
