package main

import (
	"fmt"
	"os"

	"github.com/erraggy/paralint"
	"github.com/erraggy/paralint/cmd/paralint/commands"
	"github.com/erraggy/paralint/lint"
)

// validCommands lists the subcommands, for typo suggestions.
var validCommands = []string{"search", "extract", "task", "webhook", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(commands.ExitFailed)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("paralint %s\n", paralint.Version())
		if len(args) > 0 && (args[0] == "-l" || args[0] == "--long") {
			fmt.Println(paralint.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "search":
		err = commands.HandleLint(lint.KindSearch, args)
	case "extract":
		err = commands.HandleLint(lint.KindExtract, args)
	case "task":
		err = commands.HandleLint(lint.KindTask, args)
	case "webhook":
		err = commands.HandleWebhook(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(commands.ExitFailed)
	}

	if err != nil {
		if msg := err.Error(); !isSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(commands.ExitCode(err))
	}
}

// isSilent reports whether err only carries an exit status whose message
// the handler already printed.
func isSilent(err error) bool {
	ee, ok := err.(*commands.ExitError)
	return ok && ee.Err == nil
}

// suggestCommand returns the closest valid command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, c := range validCommands {
		if d := editDistance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`paralint - offline linter for Parallel API request payloads

Usage:
  paralint <command> [flags] [<file>|-]

Commands:
  search     Lint a Search API request payload
  extract    Lint an Extract API request payload
  task       Lint a Task run request payload
  webhook    Verify a webhook signature against the raw body
  mcp        Serve the lint and webhook tools over MCP (stdio)
  version    Show version information (-l for build details)
  help       Show this help message

Run 'paralint <command> --help' for command flags.

Configuration:
  --config <file> or PARALINT_CONFIG names a YAML file; PARALINT_* environment
  variables (and a .env file in the working directory) override it.

Examples:
  paralint search search.json
  paralint extract --beta search-extract-2025-10-10 extract.json
  cat task.json | paralint task --strict --beta webhook-2025-08-12 -
  paralint webhook --secret "$SECRET" --webhook-id wh_1 --timestamp 1700000000 \
      --signature-header "v1,<hex>" --body-file body.json`)
}
