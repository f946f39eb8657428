package lint

import (
	"slices"
	"strings"
)

// Capabilities is the set of beta/feature tokens the caller declares for a
// request (the values it sends in the parallel-beta header). A nil set is
// empty.
type Capabilities map[string]struct{}

// ParseCapabilities builds a set from repeatable and/or comma-joined values.
// Tokens are trimmed and blanks are dropped.
func ParseCapabilities(values ...string) Capabilities {
	caps := make(Capabilities)
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				caps[part] = struct{}{}
			}
		}
	}
	return caps
}

// Has reports whether token was declared.
func (c Capabilities) Has(token string) bool {
	_, ok := c[token]
	return ok
}

// Sorted returns the tokens in lexical order.
func (c Capabilities) Sorted() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// String returns the sorted tokens joined with commas.
func (c Capabilities) String() string {
	return strings.Join(c.Sorted(), ",")
}
