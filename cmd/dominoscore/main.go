package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/dominoscore/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`

	Play  PlayCmd  `cmd:"" default:"1" help:"Keep score for a game (default)"`
	Names NamesCmd `cmd:"" help:"List the suggested player names"`
}

func cliVars() kong.Vars {
	return kong.Vars{
		"version":     version,
		"config_file": config.DefaultFile,
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dominoscore"),
		kong.Description("Scorekeeper for domino games, lowest total wins"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		cliVars(),
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
