package commands

import (
	"errors"
	"flag"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/paralint/lint"
)

// LintFlags contains flags for the search, extract, and task commands
type LintFlags struct {
	Betas          stringList
	Strict         bool
	NoWarnings     bool
	Quiet          bool
	CompileSchemas bool
	Verbose        bool
	Format         string
	Config         string
}

// title returns the display name of kind ("task" -> "Task").
func title(kind lint.Kind) string {
	return cases.Title(language.English).String(string(kind))
}

// SetupLintFlags creates and configures a FlagSet for the command linting
// payloads of kind. Returns the FlagSet and a LintFlags struct with bound
// flag variables.
func SetupLintFlags(kind lint.Kind) (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet(string(kind), flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &LintFlags{}

	if kind != lint.KindSearch {
		fs.Var(&flags.Betas, "beta", "capability token sent in the parallel-beta header (repeatable or comma-separated)")
	}
	if kind == lint.KindTask {
		fs.BoolVar(&flags.CompileSchemas, "compile-schemas", false, "compile task_spec schemas as JSON Schema and check an object input against the input schema")
	}
	fs.BoolVar(&flags.Strict, "strict", false, "treat warnings as failures")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print the final OK/FAILED line")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print the final OK/FAILED line")
	fs.StringVar(&flags.Format, "format", "", "output format: text, json, or yaml (default from config, else text)")
	fs.StringVar(&flags.Config, "config", "", "YAML configuration file (default $PARALINT_CONFIG)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "write debug logs to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: paralint %s [flags] [<file>|-]\n\n", kind)
		Writef(fs.Output(), "Lint a Parallel %s API request payload offline. Reads stdin when no file is given.\n\n", title(kind))
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		switch kind {
		case lint.KindSearch:
			Writef(fs.Output(), "  paralint search search.json\n")
			Writef(fs.Output(), "  cat search.json | paralint search --strict -\n")
		case lint.KindExtract:
			Writef(fs.Output(), "  paralint extract --beta search-extract-2025-10-10 extract.json\n")
		case lint.KindTask:
			Writef(fs.Output(), "  paralint task --beta events-sse-2025-07-24,webhook-2025-08-12 task.json\n")
			Writef(fs.Output(), "  paralint task --compile-schemas --format json task.json | jq '.valid'\n")
		}
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No errors (and no warnings with --strict)\n")
		Writef(fs.Output(), "  1    Errors found, or warnings with --strict\n")
		Writef(fs.Output(), "  2    Input or configuration could not be read\n")
	}

	return fs, flags
}

// HandleLint executes the search, extract, or task command
func HandleLint(kind lint.Kind, args []string) error {
	fs, flags := SetupLintFlags(kind)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: ExitInput, Err: err}
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return &ExitError{Code: ExitInput, Err: fmt.Errorf("%s command accepts at most one file path or '-' for stdin", kind)}
	}
	path := StdinFilePath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	// Validate format flag early to fail fast before reading input
	if flags.Format != "" {
		if err := ValidateOutputFormat(flags.Format); err != nil {
			return &ExitError{Code: ExitInput, Err: err}
		}
	}

	cfg, log, err := loadRuntime(flags.Config, flags.Verbose)
	if err != nil {
		return &ExitError{Code: ExitInput, Err: err}
	}
	defer func() { _ = log.Sync() }()

	format := flags.Format
	if format == "" {
		format = cfg.Format
	}
	strict := flags.Strict || cfg.Strict
	noWarnings := flags.NoWarnings || cfg.NoWarnings

	tables := lint.DefaultTables().
		WithExtraProcessors(cfg.Tables.ExtraProcessors...).
		WithExtraSearchModes(cfg.Tables.ExtraSearchModes...)

	opts := []lint.Option{
		lint.WithKind(kind),
		lint.WithCapabilities(cfg.Betas...),
		lint.WithCapabilities(flags.Betas...),
		lint.WithTables(tables),
		lint.WithIncludeWarnings(!noWarnings),
		lint.WithSchemaCompilation(flags.CompileSchemas || cfg.CompileSchemas),
	}
	if path == StdinFilePath {
		opts = append(opts, lint.WithReader(stdin))
	} else {
		opts = append(opts, lint.WithFilePath(path))
	}

	log.Debug("linting payload", zap.String("kind", string(kind)), zap.String("source", FormatPayloadPath(path)))
	result, err := lint.LintWithOptions(opts...)
	if err != nil {
		Writef(stderr, "ERROR: failed to read JSON: %v\n", err)
		return &ExitError{Code: ExitInput}
	}
	log.Debug("lint finished",
		zap.Int("errors", result.ErrorCount),
		zap.Int("warnings", result.WarningCount),
		zap.Stringer("disposition", result.Disposition()),
	)

	if format == FormatJSON || format == FormatYAML {
		if err := OutputStructured(stdout, result, format); err != nil {
			return err
		}
	} else {
		writeReport(result, flags.Quiet, strict)
	}

	if result.Failed(strict) {
		return &ExitError{Code: ExitFailed}
	}
	return nil
}

// writeReport prints the text report to stdout.
func writeReport(result *lint.Result, quiet, strict bool) {
	if !quiet {
		Writef(stdout, "Parallel %s payload validation\n", title(result.Kind))
		if len(result.Capabilities) > 0 {
			Writef(stdout, "betas=%s\n", lint.ParseCapabilities(result.Capabilities...))
		}
		Writef(stdout, "errors=%d warnings=%d\n", result.ErrorCount, result.WarningCount)
		for _, e := range result.Errors {
			Writef(stdout, "%s\n", e.Line())
		}
		for _, w := range result.Warnings {
			Writef(stdout, "%s\n", w.Line())
		}
	}

	switch {
	case !result.Failed(strict):
		Writef(stdout, "OK\n")
	case result.ErrorCount > 0:
		Writef(stdout, "FAILED: %d error(s)\n", result.ErrorCount)
	default:
		Writef(stdout, "FAILED: %d warning(s) in strict mode\n", result.WarningCount)
	}
}
