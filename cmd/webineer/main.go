package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/diamondcougar10/Webineer/cmd/webineer/commands"
	"github.com/diamondcougar10/Webineer/internal/config"
)

var version = "dev"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("webineer"),
		kong.Description("Build and manage simple static web sites."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := ctx.Run(&commands.Global{Config: cfg}, cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
