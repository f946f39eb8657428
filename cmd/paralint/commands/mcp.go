package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/paralint/internal/mcpserver"
)

// HandleMCP executes the mcp command: it serves the lint and webhook tools
// over stdio until the client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file (default $PARALINT_CONFIG)")
	verbose := fs.Bool("verbose", false, "write debug logs to stderr")
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: paralint mcp [flags]\n\n")
		Writef(fs.Output(), "Serve lint_search, lint_extract, lint_task, and verify_webhook as MCP tools over stdio.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: ExitInput, Err: err}
	}

	cfg, log, err := loadRuntime(*configPath, *verbose)
	if err != nil {
		return &ExitError{Code: ExitInput, Err: err}
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx, cfg, log)
}
