package lint

import (
	"maps"
	"slices"
)

// Capability tokens that gate beta request features.
const (
	BetaExtract    = "search-extract-2025-10-10"
	BetaEvents     = "events-sse-2025-07-24"
	BetaMCPServers = "mcp-server-2025-07-17"
	BetaWebhook    = "webhook-2025-08-12"
)

// WebhookStatusEvent is the only webhook event type currently documented.
const WebhookStatusEvent = "task_run.status"

// Limits holds the documented numeric guidance the validators enforce.
// Hard limits produce errors; soft limits only warn.
type Limits struct {
	// Search
	MaxResults         int // soft maximum for max_results
	MaxQueries         int // soft maximum number of search_queries
	MaxObjectiveChars  int // soft maximum objective length
	MaxQueryChars      int // soft maximum length of one query
	MaxDomainEntries   int // soft maximum entries per include/exclude list
	ExcerptClampFloor  int // excerpt sizes below this are clamped server-side
	MinCacheAgeSeconds int // fetch_policy.max_age_seconds soft minimum

	// Task metadata
	MaxMetadataKeyChars   int
	MaxMetadataValueChars int

	// Task schemas
	MaxSchemaDepth      int // nesting depth, the descriptor root is depth 1
	MaxSchemaProperties int // properties summed over one descriptor
	MaxTaskSpecBytes    int // hard limit on serialized task_spec
	MaxTaskSpecAndInput int // hard limit on serialized task_spec + input
}

// Tables are the fixed lookup sets and limits used while linting.
//
// A Tables value is treated as immutable once handed to a Linter. Use Clone
// before adjusting a copy for tests or configuration overrides.
type Tables struct {
	// KnownProcessors lists Task processors; others warn.
	KnownProcessors []string
	// SearchModes lists the accepted Search mode values.
	SearchModes []string
	// FeatureBetas maps a gated Task field to the capability it requires.
	FeatureBetas map[string]string
	// ExtractBeta is the capability the Extract API requires.
	ExtractBeta string
	// UnsupportedSchemaKeywords are JSON Schema keywords Task schemas must avoid.
	UnsupportedSchemaKeywords []string
	// SchemaShapedKeys mark a bare descriptor object as a JSON Schema node
	// rather than an opaque wrapper.
	SchemaShapedKeys []string
	// Limits are the documented numeric thresholds.
	Limits Limits
}

// DefaultTables returns the built-in tables.
func DefaultTables() *Tables {
	return &Tables{
		KnownProcessors: []string{
			"lite", "base", "core", "core2x", "pro",
			"ultra", "ultra2x", "ultra4x", "ultra8x",
			"base-fast", "core-fast", "pro-fast",
			"vision", "vision_pro", "deep", "deepv2",
			// legacy names still seen in older examples
			"fast", "nano",
		},
		SearchModes: []string{"one-shot", "agentic", "fast"},
		FeatureBetas: map[string]string{
			"enable_events": BetaEvents,
			"mcp_servers":   BetaMCPServers,
			"webhook":       BetaWebhook,
		},
		ExtractBeta: BetaExtract,
		UnsupportedSchemaKeywords: []string{
			"anyOf", "oneOf", "allOf", "not",
			"if", "then", "else",
			"dependentSchemas", "dependentRequired", "patternProperties",
		},
		SchemaShapedKeys: []string{"properties", "items", "required", "additionalProperties"},
		Limits: Limits{
			MaxResults:            20,
			MaxQueries:            5,
			MaxObjectiveChars:     5000,
			MaxQueryChars:         200,
			MaxDomainEntries:      10,
			ExcerptClampFloor:     1000,
			MinCacheAgeSeconds:    600,
			MaxMetadataKeyChars:   16,
			MaxMetadataValueChars: 512,
			MaxSchemaDepth:        5,
			MaxSchemaProperties:   100,
			MaxTaskSpecBytes:      15000,
			MaxTaskSpecAndInput:   18000,
		},
	}
}

// Clone returns a deep copy of t.
func (t *Tables) Clone() *Tables {
	c := *t
	c.KnownProcessors = slices.Clone(t.KnownProcessors)
	c.SearchModes = slices.Clone(t.SearchModes)
	c.FeatureBetas = maps.Clone(t.FeatureBetas)
	c.UnsupportedSchemaKeywords = slices.Clone(t.UnsupportedSchemaKeywords)
	c.SchemaShapedKeys = slices.Clone(t.SchemaShapedKeys)
	return &c
}

// WithExtraProcessors returns a copy of t that also accepts the given
// processor names. Blank and already-known names are ignored.
func (t *Tables) WithExtraProcessors(names ...string) *Tables {
	c := t.Clone()
	c.KnownProcessors = appendNew(c.KnownProcessors, names)
	return c
}

// WithExtraSearchModes returns a copy of t that also accepts the given
// Search modes.
func (t *Tables) WithExtraSearchModes(modes ...string) *Tables {
	c := t.Clone()
	c.SearchModes = appendNew(c.SearchModes, modes)
	return c
}

func appendNew(dst, values []string) []string {
	for _, v := range values {
		if v != "" && !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

func (t *Tables) isKnownProcessor(name string) bool {
	return slices.Contains(t.KnownProcessors, name)
}

func (t *Tables) isUnsupportedKeyword(key string) bool {
	return slices.Contains(t.UnsupportedSchemaKeywords, key)
}
