package lint

import (
	"github.com/erraggy/paralint/internal/issues"
	"github.com/erraggy/paralint/internal/severity"
)

// Severity indicates the severity level of a diagnostic
type Severity = severity.Severity

const (
	// SeverityError marks a payload violation that blocks submission
	SeverityError = severity.SeverityError
	// SeverityWarning marks a risky, deprecated, or undocumented construct
	SeverityWarning = severity.SeverityWarning
)

// Issue is a single diagnostic with its path, message, and severity.
type Issue = issues.Issue

// Result is the report of one lint run.
type Result struct {
	// Kind is the request shape the payload was checked against
	Kind Kind `json:"kind" yaml:"kind"`
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// Errors contains all errors in discovery order
	Errors []Issue `json:"errors" yaml:"errors"`
	// Warnings contains all warnings in discovery order
	Warnings []Issue `json:"warnings" yaml:"warnings"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"errorCount" yaml:"errorCount"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warningCount" yaml:"warningCount"`
	// Capabilities lists the declared capability tokens, sorted
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// Disposition summarizes a Result for exit-status decisions.
type Disposition int

const (
	// DispositionClean means no errors and no warnings.
	DispositionClean Disposition = iota
	// DispositionWarnings means warnings but no errors.
	DispositionWarnings
	// DispositionErrors means at least one error.
	DispositionErrors
)

// String returns the lowercase name of the disposition.
func (d Disposition) String() string {
	switch d {
	case DispositionClean:
		return "clean"
	case DispositionWarnings:
		return "warnings"
	case DispositionErrors:
		return "errors"
	default:
		return "unknown"
	}
}

// Disposition classifies the result.
func (r *Result) Disposition() Disposition {
	switch {
	case r.ErrorCount > 0:
		return DispositionErrors
	case r.WarningCount > 0:
		return DispositionWarnings
	default:
		return DispositionClean
	}
}

// Failed reports whether the result should block submission. Errors always
// fail; in strict mode warnings fail too.
func (r *Result) Failed(strict bool) bool {
	switch r.Disposition() {
	case DispositionErrors:
		return true
	case DispositionWarnings:
		return strict
	default:
		return false
	}
}

func newResult(kind Kind, c *issues.Collector, caps Capabilities, includeWarnings bool) *Result {
	r := &Result{
		Kind:         kind,
		Errors:       c.Errors(),
		Warnings:     c.Warnings(),
		ErrorCount:   c.ErrorCount(),
		WarningCount: c.WarningCount(),
	}
	if !includeWarnings {
		r.Warnings = []Issue{}
		r.WarningCount = 0
	}
	if len(caps) > 0 {
		r.Capabilities = caps.Sorted()
	}
	r.Valid = r.ErrorCount == 0
	return r
}
