// Package lint checks Parallel API request payloads offline.
//
// Three request shapes are supported: Search ([KindSearch]), Extract
// ([KindExtract]), and Task run create ([KindTask]). A payload is walked
// field by field and every finding is recorded with a JSONPath-like
// location such as "$.source_policy.include_domains[0]". Nothing is sent
// over the network.
//
// # Severity Levels
//
//   - SeverityError: the payload is non-conformant and should not be sent
//   - SeverityWarning: the payload is accepted but risky, deprecated, beta-gated
//     without the matching capability, or uses a field outside the known snapshot
//
// A result is valid iff it has no errors. Strict callers may also treat
// warnings as failures (see [Result.Failed]).
//
// # Rules
//
// Search requests:
//   - At least one of objective or search_queries
//   - mode must be one of the known modes; max_results a positive integer
//   - excerpts sizes below the auto-clamp floor warn
//   - source_policy domains must be bare hosts or ".ext" selectors
//   - processor and top-level max_chars_per_result are deprecated
//
// Extract requests:
//   - urls is required: a non-empty array of absolute http(s) URLs; repeats warn
//   - excerpts and full_content are booleans or settings objects; disabling
//     both warns
//   - the Extract beta capability is expected
//
// Task run requests:
//   - processor and input are required; unknown processors warn
//   - metadata is a flat map of short keys to scalar values
//   - task_spec must carry an output_schema; input_schema is optional
//   - enable_events, mcp_servers, and webhook each expect a beta capability
//
// # Task Schemas
//
// Schema descriptors inside task_spec are walked as a restricted JSON Schema
// profile: nesting deeper than five levels, more than 100 properties across
// the whole descriptor, and composition keywords (anyOf, oneOf, if, ...)
// are flagged. Keywords are errors in output schemas and warnings in input
// schemas, and output object nodes are nudged toward
// additionalProperties=false. The serialized task_spec must stay within
// 15000 bytes and task_spec plus input within 18000.
//
// With [WithSchemaCompilation] (or [Linter.CompileSchemas]) descriptors are
// also compiled as draft 2020-12 JSON Schema, and an object input is checked
// against the input schema.
//
// # Usage
//
//	l := lint.New()
//	result, err := l.LintBytes(lint.KindExtract, data, lint.ParseCapabilities("search-extract-2025-10-10"))
//	if err != nil {
//	    // not valid JSON
//	}
//	for _, issue := range result.Errors {
//	    fmt.Println(issue.Line())
//	}
//
// Or with functional options:
//
//	result, err := lint.LintWithOptions(
//	    lint.WithKind(lint.KindTask),
//	    lint.WithFilePath("task.json"),
//	    lint.WithCapabilities("webhook-2025-08-12,events-sse-2025-07-24"),
//	)
//
// # Concurrency
//
// Each call owns its collector and schema statistics. A [Linter] and its
// [Tables] are only read, so concurrent calls are safe.
package lint
