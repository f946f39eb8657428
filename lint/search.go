package lint

import (
	"fmt"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
)

var searchKnownKeys = []string{
	"objective", "search_queries", "mode", "max_results", "excerpts",
	"source_policy", "fetch_policy",
	// deprecated but still accepted
	"processor", "max_chars_per_result",
}

func (r *run) search(root jsonvalue.Value) {
	const p = pathutil.Root
	lim := r.limits()

	if root.Has("processor") {
		r.c.AddWarning(pathutil.Key(p, "processor"), "deprecated in Search API; prefer $.mode")
	}
	if root.Has("max_chars_per_result") {
		r.c.AddWarning(pathutil.Key(p, "max_chars_per_result"), "deprecated; prefer $.excerpts.max_chars_per_result")
	}

	objective, hasObjective := root.Lookup("objective")
	queries, hasQueries := root.Lookup("search_queries")
	if !hasObjective && !hasQueries {
		r.c.AddError(p, "at least one of 'objective' or 'search_queries' is required")
	}

	if hasObjective {
		op := pathutil.Key(p, "objective")
		if s, ok := r.nonEmptyString(objective, op); ok {
			if n := jsonvalue.RuneLen(s); n > lim.MaxObjectiveChars {
				r.c.AddWarning(op, fmt.Sprintf("length %d exceeds docs guidance (%d chars)", n, lim.MaxObjectiveChars))
			}
		}
	}

	if hasQueries {
		r.searchQueries(queries, pathutil.Key(p, "search_queries"), true)
	}

	if mode, ok := root.Lookup("mode"); ok {
		r.oneOf(mode, pathutil.Key(p, "mode"), r.tables.SearchModes)
	}

	if n, ok := root.Lookup("max_results"); ok {
		mp := pathutil.Key(p, "max_results")
		if r.positiveInteger(n, mp) && n.Float() > float64(lim.MaxResults) {
			r.c.AddWarning(mp, fmt.Sprintf("%s exceeds current docs guidance max (%d)", n.Literal(), lim.MaxResults))
		}
	}

	if excerpts, ok := root.Lookup("excerpts"); ok {
		ep := pathutil.Key(p, "excerpts")
		if r.object(excerpts, ep) {
			r.excerptSettings(excerpts, ep)
		}
	}

	if sp, ok := root.Lookup("source_policy"); ok {
		r.sourcePolicy(sp, pathutil.Key(p, "source_policy"), true)
	}

	if fp, ok := root.Lookup("fetch_policy"); ok {
		r.fetchPolicy(fp, pathutil.Key(p, "fetch_policy"))
	}

	r.unknownKeys(root, p, searchKnownKeys, "unknown field for current "+KindSearch.snapshot()+" snapshot")
}
