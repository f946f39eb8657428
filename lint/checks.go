package lint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/paralint/internal/issues"
	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
	"github.com/erraggy/paralint/internal/stringutil"
)

// Messages shared by more than one validator.
const (
	msgMustBeString      = "must be a string"
	msgMustBeInteger     = "must be an integer"
	msgMustBeNumber      = "must be a number"
	msgMustBeBoolean     = "must be a boolean"
	msgMustBeObject      = "must be an object"
	msgMustNotBeEmpty    = "must not be empty"
	msgMustBePositive    = "must be > 0"
	msgIsRequired        = "is required"
	msgStringArray       = "must be an array of strings"
	msgRequiredNonEmpty  = "is required and must be a non-empty string"
	msgEmptyQueries      = "empty array is usually not useful"
	msgClampedExcerpts   = "values below %d are auto-clamped by the API"
	msgBadURL            = "must be an absolute http/https URL"
	msgBadDomainSelector = "must be a plain domain, subdomain, or bare extension like '.gov' (no scheme/path)"
	msgDateString        = "must be YYYY-MM-DD string"
	msgDateInvalid       = "must be valid YYYY-MM-DD"
)

// run carries the state of a single lint call. Nothing in it outlives the
// call, so concurrent calls never share a run.
type run struct {
	c       *issues.Collector
	tables  *Tables
	caps    Capabilities
	compile bool
}

func (r *run) limits() Limits { return r.tables.Limits }

// object reports whether v is an object, recording "must be an object"
// otherwise.
func (r *run) object(v jsonvalue.Value, path string) bool {
	if v.Kind() != jsonvalue.KindObject {
		r.c.AddError(path, msgMustBeObject)
		return false
	}
	return true
}

// nonEmptyString checks that v is a string with non-whitespace content.
func (r *run) nonEmptyString(v jsonvalue.Value, path string) (string, bool) {
	s, ok := v.Str()
	if !ok {
		r.c.AddError(path, msgMustBeString)
		return "", false
	}
	if isBlank(s) {
		r.c.AddError(path, msgMustNotBeEmpty)
		return s, false
	}
	return s, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// integer checks that v is a number written as an integer.
func (r *run) integer(v jsonvalue.Value, path string) bool {
	if !v.IsInteger() {
		r.c.AddError(path, msgMustBeInteger)
		return false
	}
	return true
}

// positiveInteger checks that v is an integer greater than zero.
func (r *run) positiveInteger(v jsonvalue.Value, path string) bool {
	if !r.integer(v, path) {
		return false
	}
	if v.Float() <= 0 {
		r.c.AddError(path, msgMustBePositive)
		return false
	}
	return true
}

// positiveNumber checks that v is any number greater than zero.
func (r *run) positiveNumber(v jsonvalue.Value, path string) bool {
	if v.Kind() != jsonvalue.KindNumber {
		r.c.AddError(path, msgMustBeNumber)
		return false
	}
	if v.Float() <= 0 {
		r.c.AddError(path, msgMustBePositive)
		return false
	}
	return true
}

func (r *run) boolean(v jsonvalue.Value, path string) bool {
	if v.Kind() != jsonvalue.KindBool {
		r.c.AddError(path, msgMustBeBoolean)
		return false
	}
	return true
}

// oneOf checks that v is a string from allowed. The error lists the allowed
// values in sorted order.
func (r *run) oneOf(v jsonvalue.Value, path string, allowed []string) {
	s, ok := v.Str()
	if !ok {
		r.c.AddError(path, msgMustBeString)
		return
	}
	if slices.Contains(allowed, s) {
		return
	}
	sorted := slices.Clone(allowed)
	slices.Sort(sorted)
	r.c.AddError(path, fmt.Sprintf("must be one of %v", sorted))
}

// isoDate checks a YYYY-MM-DD calendar date.
func (r *run) isoDate(v jsonvalue.Value, path string) {
	s, ok := v.Str()
	if !ok {
		r.c.AddError(path, msgDateString)
		return
	}
	if !stringutil.IsISODate(s) {
		r.c.AddError(path, msgDateInvalid)
	}
}

// requiredNonEmpty checks a required string member of obj that must not be
// the empty string.
func (r *run) requiredNonEmpty(obj jsonvalue.Value, key, path string) {
	v, ok := obj.Get(key)
	if s, isStr := v.Str(); !ok || !isStr || s == "" {
		r.c.AddError(pathutil.Key(path, key), msgRequiredNonEmpty)
	}
}

// stringArray reports whether v is an array whose elements are all strings.
func stringArray(v jsonvalue.Value) bool {
	if v.Kind() != jsonvalue.KindArray {
		return false
	}
	for _, e := range v.Elems() {
		if e.Kind() != jsonvalue.KindString {
			return false
		}
	}
	return true
}

// unknownKeys warns about every member of obj missing from known.
func (r *run) unknownKeys(obj jsonvalue.Value, path string, known []string, message string) {
	for _, m := range obj.Members() {
		if !slices.Contains(known, m.Key) {
			r.c.AddWarning(pathutil.Key(path, m.Key), message)
		}
	}
}

// betaGate warns when a feature is in use without its capability token.
func (r *run) betaGate(field, path string, inUse bool) {
	token := r.tables.FeatureBetas[field]
	if !inUse || token == "" || r.caps.Has(token) {
		return
	}
	r.c.AddWarning(path, fmt.Sprintf("%s is beta-gated; include parallel-beta '%s'", field, token))
}
