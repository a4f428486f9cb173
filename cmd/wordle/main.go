package main

import (
	"github.com/alecthomas/kong"
	"github.com/lox/wordle/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a game (default)"`
	Score   ScoreCmd         `cmd:"" help:"Score a guess against an answer"`
	Check   CheckCmd         `cmd:"" help:"Check whether a word is in the dictionary"`
	Words   WordsCmd         `cmd:"" help:"Show dictionary information"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordle"),
		kong.Description("Guess the hidden five letter word"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath(),
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
