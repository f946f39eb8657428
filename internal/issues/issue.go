// Package issues provides the diagnostic type and the ordered collector
// shared by every payload validator.
package issues

import (
	"github.com/erraggy/paralint/internal/severity"
)

// Issue represents a single finding produced while linting a payload.
type Issue struct {
	// Path is the JSONPath-like location of the offending value (e.g., "$.urls[0]")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates whether the issue blocks submission
	Severity severity.Severity `json:"severity" yaml:"severity"`
}

// String returns "path: message".
func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Line returns the report line for the issue, prefixed with its severity
// label (e.g., "ERROR  $.urls[0]: must be an absolute http/https URL").
func (i Issue) Line() string {
	return i.Severity.Label() + i.String()
}
