package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/itemdash/internal/api"
	"github.com/idilsaglam/itemdash/internal/config"
	"github.com/idilsaglam/itemdash/internal/ui"
	"github.com/idilsaglam/itemdash/internal/view"
)

// Options carries the resolved configuration from root flags and env.
type Options struct {
	Config config.Config
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand it opens the interactive dashboard.
func Run(args []string, opt Options) int {
	cfg := opt.Config
	ui.SetColorForcing(colorMode(cfg))
	ui.SetTheme(cfg.Theme)

	cmd, a := "ui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ui", "health", "items":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	if len(a) != 0 {
		ui.Fail("usage: itemdash " + cmd + " (takes no arguments, got " + strings.Join(a, " ") + ")")
		return 2
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		return 2
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		ui.Fail("debug log: " + err.Error())
		return 1
	}
	defer closeLog()

	client := api.New(api.Endpoints{Health: cfg.HealthURL(), Items: cfg.ItemsURL()}, cfg.Timeout)
	ctx := context.Background()

	switch cmd {
	case "health":
		return doHealth(ctx, client)
	case "items":
		return doItems(ctx, client)
	}
	return doUI(ctx, client)
}

func PrintHelp() {
	fmt.Printf(`itemdash - backend health and item dashboard

Usage:
  itemdash [flags] [subcommand]

Subcommands:
  ui                 Interactive dashboard (default)
  health             Check backend health once and print the status
  items              Fetch the item listing once and print it as a table

Flags:
  --api-base <host>  Backend host, e.g. localhost:8000 (env API_BASE)
  --timeout <dur>    Per-request timeout, 0 for none (env ITEMDASH_TIMEOUT)
  --theme <name>     classic | neon | mono (env ITEMDASH_THEME)
  --no-color         Disable colors (env NO_COLOR)
  --force-color      Force colors when not a TTY (env CLICOLOR_FORCE)
  --debug            Write a debug log to itemdash-debug.log (env ITEMDASH_DEBUG)

Keys (ui):
  h  check health    i  get items    ?  help    q  quit

Examples:
  API_BASE=localhost:8000 itemdash
  itemdash --api-base api.internal:8080 items
`)
}

// -------------- subcommand impls ----------------

func doUI(ctx context.Context, client view.Fetcher) int {
	p := tea.NewProgram(view.New(ctx, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doHealth(ctx context.Context, client view.Fetcher) int {
	status, err := view.CheckHealth(ctx, client)
	if err != nil {
		ui.Fail(status)
		return 1
	}
	ui.OK("backend reachable")
	fmt.Println(status)
	return 0
}

func doItems(ctx context.Context, client view.Fetcher) int {
	items, err := view.GetItems(ctx, client)

	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d", t.Title.Render("Items"), t.Accent.Render("Total"), len(items))
	lines := []string{header, ""}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	} else {
		lines = append(lines, view.ItemTable(items))
	}
	ui.Panel(lines)

	if err != nil {
		ui.Fail(items[0].Name.String())
		return 1
	}
	return 0
}

// colorMode resolves the color flags. The mono theme always disables color,
// even with --force-color.
func colorMode(cfg config.Config) (force, disable bool) {
	disable = cfg.NoColor || strings.EqualFold(cfg.Theme, "mono")
	return cfg.ForceColor && !disable, disable
}

// setupLogging routes the standard logger to a file when debugging and
// discards it otherwise; the dashboard owns the terminal.
func setupLogging(cfg config.Config) (func(), error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(config.DebugLogPath, "itemdash")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
