package lint

import (
	"fmt"

	"github.com/erraggy/paralint/linterrors"
)

// Kind selects which request shape a payload is checked against.
type Kind string

const (
	// KindSearch is a Search API request.
	KindSearch Kind = "search"
	// KindExtract is an Extract API request.
	KindExtract Kind = "extract"
	// KindTask is a Task run create request.
	KindTask Kind = "task"
)

// Kinds returns every supported kind.
func Kinds() []Kind {
	return []Kind{KindSearch, KindExtract, KindTask}
}

// ParseKind converts a name such as "task" to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &linterrors.ConfigError{
		Option:  "kind",
		Value:   s,
		Message: fmt.Sprintf("must be one of %v", Kinds()),
	}
}

// snapshot names the request schema the known-field lists were taken from.
func (k Kind) snapshot() string {
	switch k {
	case KindSearch:
		return "SearchRequest"
	case KindExtract:
		return "ExtractRequest"
	case KindTask:
		return "BetaTaskRunInput"
	default:
		return string(k)
	}
}
