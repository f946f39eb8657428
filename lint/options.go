package lint

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/options"
	"github.com/erraggy/paralint/linterrors"
)

// StdinFilePath is the file path that selects standard input.
const StdinFilePath = "-"

// Option is a function that configures a lint operation
type Option func(*lintConfig) error

// lintConfig holds configuration for a lint operation
type lintConfig struct {
	kind Kind

	// Input source (exactly one must be set)
	data     []byte
	reader   io.Reader
	filePath *string
	value    *jsonvalue.Value

	caps            Capabilities
	tables          *Tables
	includeWarnings bool
	compileSchemas  bool
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*lintConfig, error) {
	cfg := &lintConfig{
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.kind == "" {
		return nil, &linterrors.ConfigError{Option: "kind", Message: "must specify a payload kind (use WithKind)"}
	}

	if err := options.ValidateSingleInputSource(
		options.Source{Option: "WithBytes", Set: cfg.data != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithValue", Set: cfg.value != nil},
	); err != nil {
		return nil, &linterrors.ConfigError{Option: "input", Cause: err}
	}

	return cfg, nil
}

// WithKind selects the request shape to check against
func WithKind(kind Kind) Option {
	return func(cfg *lintConfig) error {
		if _, err := ParseKind(string(kind)); err != nil {
			return err
		}
		cfg.kind = kind
		return nil
	}
}

// WithBytes specifies raw JSON as the input source
func WithBytes(data []byte) Option {
	return func(cfg *lintConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.data = data
		return nil
	}
}

// WithReader specifies a reader of raw JSON as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *lintConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithFilePath specifies a JSON file as the input source.
// StdinFilePath ("-") reads standard input.
func WithFilePath(path string) Option {
	return func(cfg *lintConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithValue specifies an already decoded payload as the input source
func WithValue(v jsonvalue.Value) Option {
	return func(cfg *lintConfig) error {
		cfg.value = &v
		return nil
	}
}

// WithCapabilities declares the capability tokens sent with the request.
// Values may be comma-joined and the option may be repeated.
func WithCapabilities(values ...string) Option {
	return func(cfg *lintConfig) error {
		if cfg.caps == nil {
			cfg.caps = make(Capabilities)
		}
		for token := range ParseCapabilities(values...) {
			cfg.caps[token] = struct{}{}
		}
		return nil
	}
}

// WithTables replaces the default lookup tables
func WithTables(t *Tables) Option {
	return func(cfg *lintConfig) error {
		if t == nil {
			return &linterrors.ConfigError{Option: "tables", Message: "must not be nil"}
		}
		cfg.tables = t
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings in the result
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *lintConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithSchemaCompilation enables compiling Task schema descriptors as JSON
// Schema and validating an object input against the input schema
// Default: false
func WithSchemaCompilation(enabled bool) Option {
	return func(cfg *lintConfig) error {
		cfg.compileSchemas = enabled
		return nil
	}
}

// LintWithOptions lints a payload using functional options.
//
// Example:
//
//	result, err := lint.LintWithOptions(
//	    lint.WithKind(lint.KindTask),
//	    lint.WithFilePath("task.json"),
//	    lint.WithCapabilities("webhook-2025-08-12"),
//	)
func LintWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("lint: invalid options: %w", err)
	}

	l := &Linter{
		Tables:          cfg.tables,
		IncludeWarnings: cfg.includeWarnings,
		CompileSchemas:  cfg.compileSchemas,
	}

	if cfg.value != nil {
		return l.Lint(cfg.kind, *cfg.value, cfg.caps), nil
	}

	data, source, err := cfg.read()
	if err != nil {
		return nil, err
	}
	payload, err := decode(data, source)
	if err != nil {
		return nil, err
	}
	return l.Lint(cfg.kind, payload, cfg.caps), nil
}

// read returns the raw input and a name for it in error messages.
func (cfg *lintConfig) read() ([]byte, string, error) {
	var (
		data   []byte
		source string
		err    error
	)
	switch {
	case cfg.data != nil:
		return cfg.data, "", nil
	case cfg.reader != nil:
		data, err = io.ReadAll(cfg.reader)
	case *cfg.filePath == StdinFilePath:
		source = StdinFilePath
		data, err = io.ReadAll(os.Stdin)
	default:
		source = *cfg.filePath
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, source, fmt.Errorf("lint: %w", &linterrors.ParseError{
			Source:  source,
			Message: "failed to read input",
			Cause:   err,
		})
	}
	return data, source, nil
}
