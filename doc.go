// Package paralint lints Parallel API request payloads offline and verifies
// Parallel webhook signatures.
//
// # Overview
//
// paralint catches malformed or policy-violating payloads before they are
// sent, without any network calls. It checks three request shapes:
//
//   - Search: objective and search_queries, mode, result and excerpt
//     limits, source_policy, fetch_policy
//   - Extract: urls, objective/search_queries, excerpts and full_content
//     settings, fetch_policy, and the Extract beta capability
//   - Task run: processor, input, task_spec schemas, metadata,
//     source_policy, mcp_servers, webhook, and the beta-gated features
//
// Findings come in two severities. Errors are violations that would make
// the request fail or misbehave; warnings flag risky, deprecated, or
// undocumented constructs and constraints the API may change.
//
// # Packages
//
//   - lint: the payload linter and its report types
//   - webhook: HMAC-SHA256 webhook signature verification
//   - linterrors: structured error types shared by the packages
//
// # Quick Start
//
// Lint a Task run payload read from disk:
//
//	result, err := lint.LintWithOptions(
//	    lint.WithKind(lint.KindTask),
//	    lint.WithFilePath("task.json"),
//	    lint.WithCapabilities("webhook-2025-08-12"),
//	)
//	if err != nil {
//	    log.Fatal(err) // unreadable input or invalid JSON
//	}
//	for _, e := range result.Errors {
//	    fmt.Println(e.Line())
//	}
//
// Every diagnostic carries a JSONPath-style location such as
// $.task_spec.output_schema.json_schema.properties.name or $.urls[2].
//
// Verify a webhook delivery:
//
//	v := webhook.NewVerifier(secret)
//	res, err := v.Verify(webhook.RequestFromHeader(r.Header, body))
//	if err == nil && res.Valid {
//	    // accept
//	}
//
// # Command Line
//
// The paralint command wraps both: "paralint search|extract|task <file>"
// prints a report and exits non-zero on errors (or on warnings with
// --strict), "paralint webhook" verifies a delivery, and "paralint mcp"
// serves the same operations as MCP tools over stdio.
package paralint
