package pathutil

import (
	"strconv"
	"strings"
	"unicode"
)

// Root is the path of the document itself.
const Root = "$"

// Key returns the path of member key inside the object at base. Keys that
// would not read back unambiguously in dot notation (empty, or containing
// '.', brackets, quotes, or whitespace) are rendered in bracket notation:
// $.metadata["a.b"].
func Key(base, key string) string {
	if needsQuoting(key) {
		return base + "[" + strconv.Quote(key) + "]"
	}
	return base + "." + key
}

// Index returns the path of element i inside the array at base.
func Index(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

func needsQuoting(key string) bool {
	if key == "" {
		return true
	}
	return strings.ContainsFunc(key, func(r rune) bool {
		switch r {
		case '.', '[', ']', '"', '\'', '\\':
			return true
		}
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}
