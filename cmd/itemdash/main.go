package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/itemdash/internal/cli"
	"github.com/idilsaglam/itemdash/internal/config"
	"github.com/idilsaglam/itemdash/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); env values are the defaults.
	flag.StringVar(&cfg.APIBase, "api-base", cfg.APIBase, "backend host, e.g. localhost:8000")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout (0 = none)")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic|neon|mono")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colors")
	flag.BoolVar(&cfg.ForceColor, "force-color", cfg.ForceColor, "force colors even when not a TTY")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log to "+config.DebugLogPath)
	flag.Usage = cli.PrintHelp
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
