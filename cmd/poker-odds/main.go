package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Serve      ServeCmd         `cmd:"" help:"Run the HTTP and WebSocket odds server"`
	Categories CategoriesCmd    `cmd:"" help:"Estimate the final hand-category distribution for a hand"`
	Win        WinCmd           `cmd:"" help:"Estimate the win probability of a hand against random opponents"`
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Monte Carlo poker hand strength and win probability"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
