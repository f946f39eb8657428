package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]any{"valid": true, "errorCount": 0}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.JSONEq(t, `{"valid": true, "errorCount": 0}`, buf.String())
		assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Contains(t, buf.String(), "valid: true")
		assert.Contains(t, buf.String(), "errorCount: 0")
	})

	t.Run("text is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		err := OutputStructured(&buf, data, FormatText)
		require.Error(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestFormatPayloadPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatPayloadPath(StdinFilePath))
	assert.Equal(t, "search.json", FormatPayloadPath("search.json"))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"exit error", &ExitError{Code: ExitInput}, ExitInput},
		{"wrapped exit error", errors.Join(errors.New("context"), &ExitError{Code: ExitFailed}), ExitFailed},
		{"plain error", errors.New("boom"), ExitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("webhook command requires --secret")
	err := &ExitError{Code: ExitInput, Err: cause}
	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "exit status 1", (&ExitError{Code: ExitFailed}).Error())
}

func TestStringList(t *testing.T) {
	var s stringList
	require.NoError(t, s.Set("a"))
	require.NoError(t, s.Set("b,c"))
	assert.Equal(t, stringList{"a", "b,c"}, s)
	assert.Equal(t, "a,b,c", s.String())
}
