// Package linterrors provides structured error types for paralint.
//
// Import path: github.com/erraggy/paralint/linterrors
//
// Payload problems are never Go errors: they are reported as diagnostics in
// a lint result. The types here cover the few failures that happen outside
// of linting itself, so callers can tell them apart with [errors.Is] and
// [errors.As].
//
// # Error Types
//
//   - [ParseError]: the outer document could not be read or is not valid JSON
//   - [ConfigError]: invalid configuration or option combination
//   - [SignatureError]: webhook verification inputs that cannot be evaluated
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrSignature]: Matches any [SignatureError]
//
// # Usage
//
//	result, err := lint.LintWithOptions(
//	    lint.WithKind(lint.KindTask),
//	    lint.WithFilePath("payload.json"),
//	)
//	if errors.Is(err, linterrors.ErrParse) {
//	    // exit code 2: the payload never reached the validators
//	}
package linterrors
