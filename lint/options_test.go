package lint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/linterrors"
)

func TestLintWithOptionsInputSources(t *testing.T) {
	const payload = `{"urls": ["https://a.com"], "objective": "x"}`

	dir := t.TempDir()
	path := filepath.Join(dir, "extract.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	tests := []struct {
		name string
		opt  Option
	}{
		{"bytes", WithBytes([]byte(payload))},
		{"reader", WithReader(strings.NewReader(payload))},
		{"file", WithFilePath(path)},
		{"value", WithValue(jsonvalue.MustParse(payload))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := LintWithOptions(WithKind(KindExtract), tt.opt, WithCapabilities(BetaExtract))
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Empty(t, res.Warnings)
			assert.Equal(t, []string{BetaExtract}, res.Capabilities)
		})
	}
}

func TestLintWithOptionsErrors(t *testing.T) {
	t.Run("no input source", func(t *testing.T) {
		_, err := LintWithOptions(WithKind(KindSearch))
		require.Error(t, err)
		assert.ErrorIs(t, err, linterrors.ErrConfig)
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("two input sources", func(t *testing.T) {
		_, err := LintWithOptions(WithKind(KindSearch), WithBytes([]byte(`{}`)), WithFilePath("x.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, linterrors.ErrConfig)
		assert.Contains(t, err.Error(), "got WithBytes, WithFilePath")
	})

	t.Run("no kind", func(t *testing.T) {
		_, err := LintWithOptions(WithBytes([]byte(`{}`)))
		assert.ErrorIs(t, err, linterrors.ErrConfig)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := LintWithOptions(WithKind("chat"), WithBytes([]byte(`{}`)))
		assert.ErrorIs(t, err, linterrors.ErrConfig)
	})

	t.Run("nil tables", func(t *testing.T) {
		_, err := LintWithOptions(WithKind(KindSearch), WithBytes([]byte(`{}`)), WithTables(nil))
		assert.ErrorIs(t, err, linterrors.ErrConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LintWithOptions(WithKind(KindSearch), WithFilePath(filepath.Join(t.TempDir(), "nope.json")))
		require.Error(t, err)
		assert.ErrorIs(t, err, linterrors.ErrParse)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid JSON names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"objective": }`), 0o600))

		_, err := LintWithOptions(WithKind(KindSearch), WithFilePath(path))
		var pe *linterrors.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, path, pe.Source)
		assert.Positive(t, pe.Offset)
	})

	t.Run("empty bytes are invalid JSON", func(t *testing.T) {
		_, err := LintWithOptions(WithKind(KindSearch), WithBytes(nil))
		assert.ErrorIs(t, err, linterrors.ErrParse)
	})
}

func TestLintWithOptionsSettings(t *testing.T) {
	t.Run("warnings excluded", func(t *testing.T) {
		res, err := LintWithOptions(
			WithKind(KindTask),
			WithBytes([]byte(`{"processor": "mega", "input": "x"}`)),
			WithIncludeWarnings(false),
		)
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
	})

	t.Run("repeated capabilities merge", func(t *testing.T) {
		res, err := LintWithOptions(
			WithKind(KindTask),
			WithBytes([]byte(`{"processor": "base", "input": "x", "enable_events": true, "webhook": {"url": "https://x/hook"}}`)),
			WithCapabilities(BetaEvents),
			WithCapabilities(" , "+BetaWebhook),
		)
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
	})

	t.Run("custom tables", func(t *testing.T) {
		res, err := LintWithOptions(
			WithKind(KindSearch),
			WithBytes([]byte(`{"objective": "x", "mode": "deep"}`)),
			WithTables(DefaultTables().WithExtraSearchModes("deep")),
		)
		require.NoError(t, err)
		assert.Empty(t, res.Errors)
	})

	t.Run("schema compilation", func(t *testing.T) {
		res, err := LintWithOptions(
			WithKind(KindTask),
			WithBytes([]byte(jsonOutput(`{"type": 5}`))),
			WithSchemaCompilation(true),
		)
		require.NoError(t, err)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "$.task_spec.output_schema.json_schema", res.Errors[0].Path)
	})
}
