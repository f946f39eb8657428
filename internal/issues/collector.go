package issues

import (
	"slices"

	"github.com/erraggy/paralint/internal/severity"
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 8
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 8
)

// Collector accumulates errors and warnings in discovery order.
// It performs no validation of the paths it is given.
//
// A Collector is owned by a single validation run and is not safe for
// concurrent use.
type Collector struct {
	errors   []Issue
	warnings []Issue
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		errors:   make([]Issue, 0, defaultErrorCapacity),
		warnings: make([]Issue, 0, defaultWarningCapacity),
	}
}

// AddError records an error at path.
func (c *Collector) AddError(path, message string) {
	c.errors = append(c.errors, Issue{Path: path, Message: message, Severity: severity.SeverityError})
}

// AddWarning records a warning at path.
func (c *Collector) AddWarning(path, message string) {
	c.warnings = append(c.warnings, Issue{Path: path, Message: message, Severity: severity.SeverityWarning})
}

// Errors returns the recorded errors in insertion order.
// The returned slice is a copy.
func (c *Collector) Errors() []Issue {
	return slices.Clone(c.errors)
}

// Warnings returns the recorded warnings in insertion order.
// The returned slice is a copy.
func (c *Collector) Warnings() []Issue {
	return slices.Clone(c.warnings)
}

// ErrorCount returns the number of recorded errors.
func (c *Collector) ErrorCount() int { return len(c.errors) }

// WarningCount returns the number of recorded warnings.
func (c *Collector) WarningCount() int { return len(c.warnings) }
