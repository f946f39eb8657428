package lint

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lintCase is one table-driven payload expectation. Diagnostics are
// written as "path: message" in discovery order.
type lintCase struct {
	name         string
	payload      string
	caps         []string
	wantErrors   []string
	wantWarnings []string
}

func runLintCases(t *testing.T, kind Kind, tests []lintCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lintJSON(t, kind, tt.payload, tt.caps...)
			assert.Equal(t, tt.wantErrors, lines(res.Errors), "errors")
			assert.Equal(t, tt.wantWarnings, lines(res.Warnings), "warnings")
			assert.Equal(t, len(tt.wantErrors) == 0, res.Valid)
		})
	}
}

func lintJSON(t *testing.T, kind Kind, payload string, caps ...string) *Result {
	t.Helper()
	res, err := New().LintBytes(kind, []byte(payload), ParseCapabilities(caps...))
	require.NoError(t, err)
	return res
}

func lines(list []Issue) []string {
	var out []string
	for _, i := range list {
		out = append(out, i.String())
	}
	return out
}

// quoted returns s as a JSON string literal.
func quoted(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// stringList returns a JSON array of n copies of s.
func stringList(s string, n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = quoted(s)
	}
	return "[" + strings.Join(items, ",") + "]"
}
