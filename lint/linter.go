package lint

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/erraggy/paralint/internal/issues"
	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
	"github.com/erraggy/paralint/linterrors"
)

// Linter checks request payloads. Its fields are read-only during a call, so
// one Linter may serve concurrent calls.
type Linter struct {
	// Tables are the lookup sets and limits; nil means DefaultTables()
	Tables *Tables
	// IncludeWarnings determines whether warnings are kept in the result
	IncludeWarnings bool
	// CompileSchemas compiles Task schema descriptors as JSON Schema and
	// validates an object input against the input schema
	CompileSchemas bool
}

// New creates a new Linter instance with default settings
func New() *Linter {
	return &Linter{
		Tables:          DefaultTables(),
		IncludeWarnings: true,
	}
}

// Lint checks payload against the request shape for kind and returns the
// report. It never fails: malformed payloads, including non-object roots,
// are reported as diagnostics. An unsupported kind is reported as a single
// root error.
func (l *Linter) Lint(kind Kind, payload jsonvalue.Value, caps Capabilities) *Result {
	tables := l.Tables
	if tables == nil {
		tables = DefaultTables()
	}
	r := &run{
		c:       issues.NewCollector(),
		tables:  tables,
		caps:    caps,
		compile: l.CompileSchemas,
	}

	switch {
	case payload.Kind() != jsonvalue.KindObject:
		r.c.AddError(pathutil.Root, "payload must be a JSON object")
	case kind == KindSearch:
		r.search(payload)
	case kind == KindExtract:
		r.extract(payload)
	case kind == KindTask:
		r.task(payload)
	default:
		r.c.AddError(pathutil.Root, fmt.Sprintf("unsupported payload kind %q", kind))
	}

	return newResult(kind, r.c, caps, l.IncludeWarnings)
}

// LintBytes decodes data as a single JSON document and lints it. The only
// error is a *linterrors.ParseError for input that is not valid JSON.
func (l *Linter) LintBytes(kind Kind, data []byte, caps Capabilities) (*Result, error) {
	payload, err := decode(data, "")
	if err != nil {
		return nil, err
	}
	return l.Lint(kind, payload, caps), nil
}

// decode parses data, wrapping failures as a *linterrors.ParseError that
// names source.
func decode(data []byte, source string) (jsonvalue.Value, error) {
	payload, err := jsonvalue.Parse(data)
	if err == nil {
		return payload, nil
	}
	pe := &linterrors.ParseError{Source: source, Message: "invalid JSON", Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Offset = syntaxErr.Offset
	}
	return jsonvalue.Value{}, fmt.Errorf("lint: %w", pe)
}
