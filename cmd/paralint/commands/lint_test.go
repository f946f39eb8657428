package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/paralint/lint"
)

func TestHandleLint(t *testing.T) {
	tests := []struct {
		name       string
		kind       lint.Kind
		payload    string
		args       []string
		wantCode   int
		wantOut    []string
		notWantOut []string
	}{
		{
			name:     "valid search",
			kind:     lint.KindSearch,
			payload:  `{"objective": "Find the latest Go release notes", "mode": "one-shot", "max_results": 5}`,
			wantCode: ExitOK,
			wantOut:  []string{"Parallel Search payload validation", "errors=0 warnings=0", "OK"},
		},
		{
			name:     "invalid domain selector",
			kind:     lint.KindSearch,
			payload:  `{"objective": "x", "source_policy": {"include_domains": ["https://example.com/path"]}}`,
			wantCode: ExitFailed,
			wantOut:  []string{"ERROR  $.source_policy.include_domains[0]: must be a plain domain", "FAILED: 1 error(s)"},
		},
		{
			name:     "extract with beta",
			kind:     lint.KindExtract,
			payload:  `{"urls": ["https://www.example.com"], "objective": "pricing"}`,
			args:     []string{"--beta", "search-extract-2025-10-10"},
			wantCode: ExitOK,
			wantOut:  []string{"Parallel Extract payload validation", "betas=search-extract-2025-10-10", "OK"},
		},
		{
			name:     "extract invalid url",
			kind:     lint.KindExtract,
			payload:  `{"urls": ["example.com"], "objective": "pricing"}`,
			args:     []string{"--beta", "search-extract-2025-10-10"},
			wantCode: ExitFailed,
			wantOut:  []string{"ERROR  $.urls[0]: must be an absolute http/https URL"},
		},
		{
			name:     "task with events beta",
			kind:     lint.KindTask,
			payload:  `{"processor": "base", "input": "hi", "enable_events": true}`,
			args:     []string{"--beta", "events-sse-2025-07-24"},
			wantCode: ExitOK,
			wantOut:  []string{"errors=0 warnings=0", "OK"},
		},
		{
			name:     "task webhook warning passes by default",
			kind:     lint.KindTask,
			payload:  `{"processor": "base", "input": "hi", "webhook": {"url": "https://x/hook"}}`,
			wantCode: ExitOK,
			wantOut:  []string{"WARN   $.webhook: webhook is beta-gated", "OK"},
		},
		{
			name:     "task webhook warning fails in strict mode",
			kind:     lint.KindTask,
			payload:  `{"processor": "base", "input": "hi", "webhook": {"url": "https://x/hook"}}`,
			args:     []string{"--strict"},
			wantCode: ExitFailed,
			wantOut:  []string{"FAILED: 1 warning(s) in strict mode"},
		},
		{
			name:       "no warnings",
			kind:       lint.KindTask,
			payload:    `{"processor": "base", "input": "hi", "webhook": {"url": "https://x/hook"}}`,
			args:       []string{"--strict", "--no-warnings"},
			wantCode:   ExitOK,
			wantOut:    []string{"errors=0 warnings=0", "OK"},
			notWantOut: []string{"WARN"},
		},
		{
			name:       "quiet",
			kind:       lint.KindSearch,
			payload:    `{"objective": "x", "max_results": 0}`,
			args:       []string{"-q"},
			wantCode:   ExitFailed,
			wantOut:    []string{"FAILED: 1 error(s)"},
			notWantOut: []string{"payload validation", "ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, _ := streams(t, tt.payload)

			err := HandleLint(tt.kind, append(tt.args, StdinFilePath))
			assert.Equal(t, tt.wantCode, ExitCode(err))
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			for _, unwanted := range tt.notWantOut {
				assert.NotContains(t, out.String(), unwanted)
			}
		})
	}
}

func TestHandleLintFile(t *testing.T) {
	dir, out, _ := streams(t, "")
	path := writeFile(t, dir, "search.json", `{"search_queries": ["golang generics"]}`)

	err := HandleLint(lint.KindSearch, []string{path})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "OK")
}

func TestHandleLintReadsStdinWithoutFile(t *testing.T) {
	_, out, _ := streams(t, `{"objective": "x"}`)

	require.NoError(t, HandleLint(lint.KindSearch, nil))
	assert.Contains(t, out.String(), "OK")
}

func TestHandleLintInputErrors(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		_, out, errOut := streams(t, `{"objective": `)

		err := HandleLint(lint.KindSearch, []string{StdinFilePath})
		assert.Equal(t, ExitInput, ExitCode(err))
		assert.Contains(t, errOut.String(), "ERROR: failed to read JSON:")
		assert.Empty(t, out.String())
	})

	t.Run("missing file", func(t *testing.T) {
		dir, _, errOut := streams(t, "")

		err := HandleLint(lint.KindTask, []string{dir + "/missing.json"})
		assert.Equal(t, ExitInput, ExitCode(err))
		assert.Contains(t, errOut.String(), "ERROR: failed to read JSON:")
	})

	t.Run("invalid format", func(t *testing.T) {
		streams(t, `{}`)

		err := HandleLint(lint.KindSearch, []string{"--format", "xml", StdinFilePath})
		assert.Equal(t, ExitInput, ExitCode(err))
		assert.ErrorContains(t, err, "invalid format 'xml'")
	})

	t.Run("too many arguments", func(t *testing.T) {
		streams(t, "")

		err := HandleLint(lint.KindSearch, []string{"a.json", "b.json"})
		assert.Equal(t, ExitInput, ExitCode(err))
		assert.ErrorContains(t, err, "at most one file path")
	})

	t.Run("beta flag only on extract and task", func(t *testing.T) {
		streams(t, `{}`)

		err := HandleLint(lint.KindSearch, []string{"--beta", "x", StdinFilePath})
		assert.Equal(t, ExitInput, ExitCode(err))
	})

	t.Run("bad config", func(t *testing.T) {
		streams(t, `{}`)
		t.Setenv("PARALINT_FORMAT", "xml")

		err := HandleLint(lint.KindSearch, []string{StdinFilePath})
		assert.Equal(t, ExitInput, ExitCode(err))
		assert.ErrorContains(t, err, "format")
	})
}

func TestHandleLintHelp(t *testing.T) {
	_, _, errOut := streams(t, "")

	require.NoError(t, HandleLint(lint.KindTask, []string{"--help"}))
	assert.Contains(t, errOut.String(), "Usage: paralint task")
	assert.Contains(t, errOut.String(), "-compile-schemas")
}

func TestHandleLintStructuredOutput(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		_, out, _ := streams(t, `{"urls": ["example.com"]}`)

		err := HandleLint(lint.KindExtract, []string{"--format", "json", StdinFilePath})
		assert.Equal(t, ExitFailed, ExitCode(err))

		var got struct {
			Kind         string `json:"kind"`
			Valid        bool   `json:"valid"`
			ErrorCount   int    `json:"errorCount"`
			WarningCount int    `json:"warningCount"`
			Errors       []struct {
				Path    string `json:"path"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "extract", got.Kind)
		assert.False(t, got.Valid)
		assert.Equal(t, 1, got.ErrorCount)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "$.urls[0]", got.Errors[0].Path)
	})

	t.Run("yaml from config", func(t *testing.T) {
		_, out, _ := streams(t, `{"objective": "x"}`)
		t.Setenv("PARALINT_FORMAT", "yaml")

		require.NoError(t, HandleLint(lint.KindSearch, []string{StdinFilePath}))
		assert.Contains(t, out.String(), "kind: search")
		assert.Contains(t, out.String(), "valid: true")
	})
}

func TestHandleLintConfigFile(t *testing.T) {
	dir, out, _ := streams(t, `{"processor": "base", "input": "hi", "webhook": {"url": "https://x/hook"}}`)
	cfgPath := writeFile(t, dir, "paralint.yaml", "strict: true\nbetas:\n  - webhook-2025-08-12\n")

	require.NoError(t, HandleLint(lint.KindTask, []string{"--config", cfgPath, StdinFilePath}))
	assert.Contains(t, out.String(), "betas=webhook-2025-08-12")
	assert.Contains(t, out.String(), "OK")
}
