// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes paralint capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/erraggy/paralint"
	"github.com/erraggy/paralint/internal/config"
	"github.com/erraggy/paralint/lint"
)

const serverInstructions = `paralint MCP server: lints Parallel Search, Extract, and Task run request payloads offline and verifies webhook signatures.

Configuration: defaults come from paralint configuration (an optional YAML file named by PARALINT_CONFIG, then PARALINT_* environment variables set in your MCP client config).

Key settings:
- PARALINT_STRICT (default: false): treat warnings as failures by default
- PARALINT_NO_WARNINGS (default: false): suppress warnings by default
- PARALINT_BETAS: comma-separated capability tokens declared on every lint
- PARALINT_COMPILE_SCHEMAS (default: false): compile Task schemas as JSON Schema
- PARALINT_MCP__RESULT_LIMIT (default: 100): default page size for diagnostics
- PARALINT_MCP__CACHE_ENABLED (default: true): cache decoded payloads

Payloads: pass exactly one of payload.file or payload.content. Declare the parallel-beta header values you will send in betas so beta-gated features are checked against them.`

// logger receives tool-call and configuration diagnostics. Run installs the
// caller's logger.
var logger = zap.NewNop()

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil c uses the built-in defaults and a nil
// log discards diagnostics.
func Run(ctx context.Context, c *config.Config, log *zap.Logger) error {
	if c != nil {
		cfg = newServerConfig(*c)
	}
	if log != nil {
		logger = log
	}
	payloadCache.reset()
	if cfg.CacheEnabled {
		payloadCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	logger.Debug("mcp server starting",
		zap.Bool("cache", cfg.CacheEnabled),
		zap.Strings("betas", cfg.Betas),
		zap.Int("result_limit", cfg.ResultLimit),
	)

	server := mcp.NewServer(
		&mcp.Implementation{Name: "paralint", Version: paralint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint_search",
		Description: "Lint a Parallel Search API request payload offline. Returns errors and warnings with JSON path locations ($.field[index]). Errors block submission; warnings flag risky, deprecated, or undocumented constructs. Use offset/limit to paginate through results. Strict mode and warning suppression defaults are configurable via PARALINT_STRICT and PARALINT_NO_WARNINGS.",
	}, lintHandler(lint.KindSearch))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint_extract",
		Description: "Lint a Parallel Extract API request payload offline: URLs, objective/search_queries, excerpts and full_content settings, fetch_policy. Extract is beta; list the parallel-beta tokens you will send in betas, otherwise a capability warning is reported.",
	}, lintHandler(lint.KindExtract))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint_task",
		Description: "Lint a Parallel Task run request payload offline: processor, input, task_spec output/input schemas (nesting depth, property budget, unsupported keywords, size budgets), metadata, source_policy, mcp_servers, webhook. enable_events, mcp_servers, and webhook are beta-gated; list the tokens you will send in betas. Set compile_schemas to also compile schemas as JSON Schema and check an object input against the input schema.",
	}, lintHandler(lint.KindTask))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "verify_webhook",
		Description: "Verify a Parallel webhook delivery: HMAC-SHA256 over <webhook_id>.<timestamp>.<body> with the signing secret, compared in constant time against every candidate in the signature header (v1,<hex> / v1=<hex> / bare hex), plus a replay window check (default 300 seconds). Reports signature match and timestamp freshness separately. body must be the exact raw bytes received.",
	}, handleVerifyWebhook)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
