package mcpserver

import (
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/erraggy/paralint/lint"
)

type lintInput struct {
	Payload        payloadInput `json:"payload"                   jsonschema:"The request payload to lint"`
	Betas          []string     `json:"betas,omitempty"           jsonschema:"Capability tokens you will send in the parallel-beta header (merged with PARALINT_BETAS)"`
	Strict         *bool        `json:"strict,omitempty"          jsonschema:"Treat warnings as failures"`
	NoWarnings     *bool        `json:"no_warnings,omitempty"     jsonschema:"Suppress warnings from output"`
	CompileSchemas *bool        `json:"compile_schemas,omitempty" jsonschema:"Compile Task schemas as JSON Schema and check an object input against the input schema"`
	Offset         int          `json:"offset,omitempty"          jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit          int          `json:"limit,omitempty"           jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type lintIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type lintOutput struct {
	Kind         string      `json:"kind"`
	Valid        bool        `json:"valid"`
	Passed       bool        `json:"passed"`
	Disposition  string      `json:"disposition"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Returned     int         `json:"returned"`
	Betas        []string    `json:"betas,omitempty"`
	Errors       []lintIssue `json:"errors,omitempty"`
	Warnings     []lintIssue `json:"warnings,omitempty"`
}

// lintHandler returns the tool handler for one payload kind.
func lintHandler(kind lint.Kind) mcp.ToolHandlerFor[lintInput, lintOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
		// Apply config defaults when input fields are omitted (nil).
		strict := cfg.Strict
		if input.Strict != nil {
			strict = *input.Strict
		}
		noWarnings := cfg.NoWarnings
		if input.NoWarnings != nil {
			noWarnings = *input.NoWarnings
		}
		compile := cfg.CompileSchemas
		if input.CompileSchemas != nil {
			compile = *input.CompileSchemas
		}

		payload, err := input.Payload.resolve()
		if err != nil {
			return errResult(err), lintOutput{}, nil
		}

		caps := lint.ParseCapabilities(slices.Concat(cfg.Betas, input.Betas)...)
		l := &lint.Linter{
			Tables:          cfg.Tables,
			IncludeWarnings: !noWarnings,
			CompileSchemas:  compile,
		}
		result := l.Lint(kind, *payload, caps)
		logger.Debug("lint tool call",
			zap.String("kind", string(kind)),
			zap.Int("errors", result.ErrorCount),
			zap.Int("warnings", result.WarningCount),
		)

		output := lintOutput{
			Kind:         string(kind),
			Valid:        result.Valid,
			Passed:       !result.Failed(strict),
			Disposition:  result.Disposition().String(),
			ErrorCount:   result.ErrorCount,
			WarningCount: result.WarningCount,
			Betas:        result.Capabilities,
			Errors:       toLintIssues(result.Errors),
			Warnings:     toLintIssues(result.Warnings),
		}

		// Paginate errors and warnings.
		output.Errors = paginate(output.Errors, input.Offset, input.Limit)
		output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
		output.Returned = len(output.Errors) + len(output.Warnings)

		return nil, output, nil
	}
}

func toLintIssues(list []lint.Issue) []lintIssue {
	out := makeSlice[lintIssue](len(list))
	for _, i := range list {
		out = append(out, lintIssue{Path: i.Path, Message: i.Message})
	}
	return out
}
