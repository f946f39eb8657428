// Package severity provides severity level constants and utilities
// for diagnostics reported by the lint package.
//
// Only two levels exist:
//   - SeverityError: the payload is non-conformant and must not be submitted
//   - SeverityWarning: the payload is conformant but risky, deprecated, or uses
//     an undocumented field
//
// The severity levels are ordered from most to least severe:
// Error < Warning (by numeric value).
package severity

import "encoding/json"

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	// SeverityError indicates a payload violation that blocks submission.
	SeverityError Severity = iota

	// SeverityWarning indicates a risky, deprecated, or forward-compatible
	// construct that does not block submission by default.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Label returns the fixed-width prefix used in text reports
// ("ERROR  " or "WARN   ").
func (s Severity) Label() string {
	switch s {
	case SeverityError:
		return "ERROR  "
	case SeverityWarning:
		return "WARN   "
	default:
		return "?      "
	}
}

// MarshalText renders the severity as its string form so structured
// (JSON/YAML) reports carry "error"/"warning" instead of integers.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var _ json.Marshaler = Severity(0)

// MarshalJSON implements json.Marshaler.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
