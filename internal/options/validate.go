// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"
)

// Source describes one mutually exclusive input option and whether the
// caller supplied it.
type Source struct {
	// Option is the name of the option function (e.g., "WithFilePath")
	Option string
	// Set is true when the option was applied
	Set bool
}

// ValidateSingleInputSource ensures exactly one of sources is set.
// The returned error names the available options when none is set and the
// conflicting ones when more than one is.
func ValidateSingleInputSource(sources ...Source) error {
	var all, set []string
	for _, s := range sources {
		all = append(all, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("must specify an input source (use %s)", joinOr(all))
	default:
		return fmt.Errorf("must specify exactly one input source, got %s", strings.Join(set, ", "))
	}
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
