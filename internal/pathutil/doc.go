// Package pathutil builds the JSONPath-like locations attached to
// diagnostics.
//
// Paths are rooted at "$". Object members are appended with a dot and array
// elements with a bracketed index:
//
//	p := pathutil.Key(pathutil.Root, "source_policy") // "$.source_policy"
//	p = pathutil.Key(p, "include_domains")            // "$.source_policy.include_domains"
//	p = pathutil.Index(p, 0)                          // "$.source_policy.include_domains[0]"
//
// A key that would read ambiguously after a dot (empty, or containing dots,
// brackets, quotes, whitespace, or control characters) is appended in
// quoted bracket notation instead:
//
//	pathutil.Key("$.metadata", "a.b") // `$.metadata["a.b"]`
package pathutil
