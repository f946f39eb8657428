package lint

import (
	"fmt"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
	"github.com/erraggy/paralint/internal/stringutil"
)

var extractKnownKeys = []string{"urls", "objective", "search_queries", "fetch_policy", "excerpts", "full_content"}

func (r *run) extract(root jsonvalue.Value) {
	const p = pathutil.Root

	r.urls(root, pathutil.Key(p, "urls"))

	if objective, ok := root.Lookup("objective"); ok {
		r.nonEmptyString(objective, pathutil.Key(p, "objective"))
	}
	if queries, ok := root.Lookup("search_queries"); ok {
		r.searchQueries(queries, pathutil.Key(p, "search_queries"), false)
	}
	if fp, ok := root.Lookup("fetch_policy"); ok {
		r.fetchPolicy(fp, pathutil.Key(p, "fetch_policy"))
	}

	// Excerpts default to enabled and full content to disabled; an explicit
	// null turns either off.
	excerptsOn := true
	if v, ok := root.Get("excerpts"); ok {
		excerptsOn = r.contentToggle(v, pathutil.Key(p, "excerpts"), r.excerptSettings)
	}
	fullContentOn := false
	if v, ok := root.Get("full_content"); ok {
		fullContentOn = r.contentToggle(v, pathutil.Key(p, "full_content"), r.fullContentSettings)
	}

	if !excerptsOn && !fullContentOn {
		r.c.AddWarning(p, "both excerpts and full_content are disabled; response may contain no useful content")
	}
	if excerptsOn && isNullMember(root, "objective") && isNullMember(root, "search_queries") {
		r.c.AddWarning(pathutil.Key(p, "excerpts"), "without objective/search_queries, excerpts may be redundant with full content")
	}

	if beta := r.tables.ExtractBeta; beta != "" && !r.caps.Has(beta) {
		r.c.AddWarning(p, fmt.Sprintf("Extract API is beta; include parallel-beta '%s' (current docs/OpenAPI)", beta))
	}

	r.unknownKeys(root, p, extractKnownKeys, "unknown field for current "+KindExtract.snapshot()+" snapshot")
}

// urls checks the required list of absolute URLs. Repeated URLs warn once
// per repeat; the first occurrence is not flagged.
func (r *run) urls(root jsonvalue.Value, path string) {
	list, ok := root.Lookup("urls")
	if !ok {
		r.c.AddError(path, msgIsRequired)
		return
	}
	if list.Kind() != jsonvalue.KindArray {
		r.c.AddError(path, "must be an array of URLs")
		return
	}
	if list.Len() == 0 {
		r.c.AddError(path, msgMustNotBeEmpty)
	}
	seen := make(map[string]struct{}, list.Len())
	for i, item := range list.Elems() {
		ip := pathutil.Index(path, i)
		u, isStr := item.Str()
		if !isStr {
			r.c.AddError(ip, msgMustBeString)
			continue
		}
		if !stringutil.IsHTTPURL(u) {
			r.c.AddError(ip, msgBadURL)
			continue
		}
		if _, dup := seen[u]; dup {
			r.c.AddWarning(ip, "duplicate URL")
		}
		seen[u] = struct{}{}
	}
}

// contentToggle interprets a boolean-or-settings member and reports whether
// the feature ends up enabled. Settings objects are checked with settings.
func (r *run) contentToggle(v jsonvalue.Value, path string, settings func(jsonvalue.Value, string)) bool {
	switch v.Kind() {
	case jsonvalue.KindNull:
		return false
	case jsonvalue.KindBool:
		b, _ := v.Bool()
		return b
	case jsonvalue.KindObject:
		settings(v, path)
		return true
	default:
		r.c.AddError(path, "must be a boolean or object")
		return false
	}
}

func (r *run) fullContentSettings(v jsonvalue.Value, path string) {
	if m, ok := v.Lookup("max_chars_per_result"); ok {
		r.positiveInteger(m, pathutil.Key(path, "max_chars_per_result"))
	}
}

// isNullMember reports whether key is absent from obj or explicitly null.
func isNullMember(obj jsonvalue.Value, key string) bool {
	v, ok := obj.Get(key)
	return !ok || v.IsNull()
}
