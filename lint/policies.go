package lint

import (
	"fmt"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
	"github.com/erraggy/paralint/internal/stringutil"
)

// searchQueries checks an array of non-empty query strings. When guidance is
// set, the Search length and count thresholds also apply.
func (r *run) searchQueries(v jsonvalue.Value, path string, guidance bool) {
	if v.Kind() != jsonvalue.KindArray {
		r.c.AddError(path, msgStringArray)
		return
	}
	lim := r.limits()
	if v.Len() == 0 {
		r.c.AddWarning(path, msgEmptyQueries)
	}
	if guidance && v.Len() > lim.MaxQueries {
		r.c.AddWarning(path, fmt.Sprintf("%d queries exceeds docs guidance (%d)", v.Len(), lim.MaxQueries))
	}
	for i, q := range v.Elems() {
		p := pathutil.Index(path, i)
		s, ok := q.Str()
		if !ok {
			r.c.AddError(p, msgMustBeString)
			continue
		}
		r.nonEmptyString(q, p)
		if n := jsonvalue.RuneLen(s); guidance && n > lim.MaxQueryChars {
			r.c.AddWarning(p, fmt.Sprintf("length %d exceeds docs guidance (%d chars)", n, lim.MaxQueryChars))
		}
	}
}

// excerptSettings checks the size bounds of an excerpts object.
func (r *run) excerptSettings(v jsonvalue.Value, path string) {
	for _, key := range []string{"max_chars_per_result", "max_chars_total"} {
		val, ok := v.Lookup(key)
		if !ok {
			continue
		}
		p := pathutil.Key(path, key)
		if r.positiveInteger(val, p) && val.Float() < float64(r.limits().ExcerptClampFloor) {
			r.c.AddWarning(p, fmt.Sprintf(msgClampedExcerpts, r.limits().ExcerptClampFloor))
		}
	}
}

// sourcePolicy checks domain include/exclude lists and the after_date
// filter. Task requests do not support after_date, which is flagged but
// still format-checked.
func (r *run) sourcePolicy(v jsonvalue.Value, path string, allowAfterDate bool) {
	if !r.object(v, path) {
		return
	}
	lim := r.limits()
	for _, key := range []string{"include_domains", "exclude_domains"} {
		list, ok := v.Lookup(key)
		if !ok {
			continue
		}
		p := pathutil.Key(path, key)
		if list.Kind() != jsonvalue.KindArray {
			r.c.AddError(p, "must be an array of domain selectors")
			continue
		}
		if list.Len() > lim.MaxDomainEntries {
			r.c.AddWarning(p, fmt.Sprintf("%d entries exceeds docs guidance (%d)", list.Len(), lim.MaxDomainEntries))
		}
		for i, item := range list.Elems() {
			ip := pathutil.Index(p, i)
			s, isStr := item.Str()
			switch {
			case !isStr:
				r.c.AddError(ip, msgMustBeString)
			case !stringutil.IsDomainSelector(s):
				r.c.AddError(ip, msgBadDomainSelector)
			}
		}
	}

	p := pathutil.Key(path, "after_date")
	if !allowAfterDate && v.Has("after_date") {
		r.c.AddWarning(p, "Task source policy does not currently support after_date")
	}
	if val, ok := v.Lookup("after_date"); ok {
		r.isoDate(val, p)
	}
}

// fetchPolicy checks cache age, timeout, and cache fallback settings.
func (r *run) fetchPolicy(v jsonvalue.Value, path string) {
	if !r.object(v, path) {
		return
	}
	if val, ok := v.Lookup("max_age_seconds"); ok {
		p := pathutil.Key(path, "max_age_seconds")
		if r.integer(val, p) && val.Float() < float64(r.limits().MinCacheAgeSeconds) {
			r.c.AddWarning(p, fmt.Sprintf("docs/OpenAPI describe minimum %d seconds (%d minutes)",
				r.limits().MinCacheAgeSeconds, r.limits().MinCacheAgeSeconds/60))
		}
	}
	if val, ok := v.Lookup("timeout_seconds"); ok {
		r.positiveNumber(val, pathutil.Key(path, "timeout_seconds"))
	}
	if val, ok := v.Lookup("disable_cache_fallback"); ok {
		r.boolean(val, pathutil.Key(path, "disable_cache_fallback"))
	}
}
