package severity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},

		// Edge cases: Invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.String()
			assert.Equal(t, tt.expected, result, "Severity(%d).String() = %q, want %q", tt.severity, result, tt.expected)
		})
	}
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "ERROR  ", SeverityError.Label())
	assert.Equal(t, "WARN   ", SeverityWarning.Label())

	// Labels are padded to the same width so report columns line up.
	assert.Len(t, SeverityError.Label(), len(SeverityWarning.Label()))
	assert.Len(t, Severity(42).Label(), len(SeverityError.Label()))
}

// TestSeverityStringConsistency verifies that all defined severity levels
// return non-empty, lowercase strings without whitespace.
func TestSeverityStringConsistency(t *testing.T) {
	for _, sev := range []Severity{SeverityError, SeverityWarning} {
		str := sev.String()

		assert.NotEmpty(t, str, "Severity(%d).String() should not be empty", sev)
		assert.Equal(t, strings.ToLower(str), str, "Severity string should be lowercase: %q", str)
		assert.NotContains(t, str, " ", "Severity string should not contain spaces: %q", str)
	}
}

func TestSeverityMarshal(t *testing.T) {
	b, err := json.Marshal(map[string]Severity{"s": SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"warning"}`, string(b))

	text, err := SeverityError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))
}
