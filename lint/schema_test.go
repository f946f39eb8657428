package lint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/paralint/internal/issues"
	"github.com/erraggy/paralint/internal/jsonvalue"
)

const (
	strictHint      = "set additionalProperties=false for more stable Task outputs"
	depthError      = "nesting depth exceeds docs guidance (5)"
	propBudgetError = "total JSON schema properties exceed docs guidance (100)"
)

// taskWithSpec wraps a task_spec literal in an otherwise valid request.
func taskWithSpec(spec string) string {
	return fmt.Sprintf(`{"processor": "base", "input": "x", "task_spec": %s}`, spec)
}

// jsonOutput wraps a JSON Schema literal as a type=json output descriptor.
func jsonOutput(schema string) string {
	return taskWithSpec(fmt.Sprintf(`{"output_schema": {"type": "json", "json_schema": %s}}`, schema))
}

// nestedItems returns an array schema whose items nest levels deep.
func nestedItems(levels int) string {
	s := `{"type": "string"}`
	for range levels - 1 {
		s = fmt.Sprintf(`{"type": "array", "items": %s}`, s)
	}
	return s
}

// objectWithProps returns a strict object schema with n string properties.
func objectWithProps(prefix string, n int, extra ...string) string {
	props := make([]string, 0, n+len(extra))
	for i := range n {
		props = append(props, fmt.Sprintf(`"%s%d": {"type": "string"}`, prefix, i))
	}
	props = append(props, extra...)
	return fmt.Sprintf(`{"type": "object", "properties": {%s}, "additionalProperties": false}`, strings.Join(props, ", "))
}

func TestTaskSpecShapes(t *testing.T) {
	const out = "$.task_spec.output_schema"

	tests := []lintCase{
		{name: "string spec", payload: taskWithSpec(`"Return the GDP"`)},
		{name: "null spec", payload: taskWithSpec(`null`)},
		{
			name:       "spec of the wrong type",
			payload:    taskWithSpec(`5`),
			wantErrors: []string{"$.task_spec: must be a string or object"},
		},
		{
			name:       "missing output_schema",
			payload:    taskWithSpec(`{"input_schema": "text"}`),
			wantErrors: []string{"$.task_spec: must contain output_schema"},
		},
		{
			name:       "null output_schema",
			payload:    taskWithSpec(`{"output_schema": null}`),
			wantErrors: []string{out + ": must not be null"},
		},
		{
			name:       "output_schema of the wrong type",
			payload:    taskWithSpec(`{"output_schema": []}`),
			wantErrors: []string{out + ": must be a string or object"},
		},
		{name: "bare string descriptor", payload: taskWithSpec(`{"output_schema": "A short summary"}`)},
		{name: "auto descriptor", payload: taskWithSpec(`{"output_schema": {"type": "auto"}}`)},
		{name: "text wrapper", payload: taskWithSpec(`{"output_schema": {"type": "text", "description": "prose"}}`)},
		{
			name:       "json without json_schema",
			payload:    taskWithSpec(`{"output_schema": {"type": "json"}}`),
			wantErrors: []string{out + ": type='json' requires a nested 'json_schema' object"},
		},
		{
			name:       "json_schema not an object",
			payload:    taskWithSpec(`{"output_schema": {"type": "json", "json_schema": "x"}}`),
			wantErrors: []string{out + ".json_schema: must be an object"},
		},
		{
			name:         "json_schema with text type",
			payload:      taskWithSpec(`{"output_schema": {"type": "text", "json_schema": {"type": "object", "additionalProperties": false}}}`),
			wantWarnings: []string{out + ": json_schema is present but type is not 'json'"},
		},
		{
			name:         "unrecognized wrapper",
			payload:      taskWithSpec(`{"output_schema": {"type": "xml", "description": "x"}}`),
			wantWarnings: []string{out + ": unrecognized schema wrapper type 'xml'"},
		},
		{
			name:    "plain object schema is an unrecognized wrapper",
			payload: taskWithSpec(`{"output_schema": {"type": "object", "properties": {"a": {"type": "string"}}}}`),
			wantWarnings: []string{
				out + ": unrecognized schema wrapper type 'object'",
				out + ": " + strictHint,
			},
		},
		{
			name:       "untyped schema-shaped descriptor",
			payload:    taskWithSpec(`{"output_schema": {"required": ["a"], "anyOf": []}}`),
			wantErrors: []string{out + ": contains unsupported JSON Schema keyword 'anyOf' per Task docs guidance"},
		},
		{
			name:    "null input_schema is skipped",
			payload: taskWithSpec(`{"output_schema": "text", "input_schema": null}`),
		},
	}

	runLintCases(t, KindTask, tests)
}

func TestSchemaProfile(t *testing.T) {
	const js = "$.task_spec.output_schema.json_schema"

	tests := []lintCase{
		{
			name:    "unsupported keyword in output schema",
			payload: jsonOutput(`{"type": "object", "properties": {"a": {"anyOf": [{"type": "string"}], "oneOf": []}}, "additionalProperties": false}`),
			wantErrors: []string{
				js + ".properties.a: contains unsupported JSON Schema keyword 'anyOf' per Task docs guidance",
				js + ".properties.a: contains unsupported JSON Schema keyword 'oneOf' per Task docs guidance",
			},
		},
		{
			name: "unsupported keyword in input schema warns",
			payload: taskWithSpec(`{
				"output_schema": "text",
				"input_schema": {"type": "json", "json_schema": {"type": "object", "properties": {"a": {"if": {}}}}}
			}`),
			wantWarnings: []string{
				"$.task_spec.input_schema.json_schema.properties.a: contains unsupported JSON Schema keyword 'if' per Task docs guidance",
			},
		},
		{
			name:         "strict hint on output objects",
			payload:      jsonOutput(`{"type": "object", "properties": {"a": {"type": "string"}}, "additionalProperties": true}`),
			wantWarnings: []string{js + ": " + strictHint},
		},
		{
			name:    "depth at the limit",
			payload: jsonOutput(nestedItems(5)),
		},
		{
			name:       "depth one past the limit",
			payload:    jsonOutput(nestedItems(6)),
			wantErrors: []string{js + strings.Repeat(".items", 5) + ": " + depthError},
		},
		{
			name:    "depth reported at every deeper node",
			payload: jsonOutput(nestedItems(7)),
			wantErrors: []string{
				js + strings.Repeat(".items", 5) + ": " + depthError,
				js + strings.Repeat(".items", 6) + ": " + depthError,
			},
		},
		{
			name:    "property budget at the limit",
			payload: jsonOutput(objectWithProps("p", 100)),
		},
		{
			name:       "property budget exceeded",
			payload:    jsonOutput(objectWithProps("p", 101)),
			wantErrors: []string{js + ": " + propBudgetError},
		},
		{
			name:       "property budget spans nested objects",
			payload:    jsonOutput(objectWithProps("p", 60, `"child": `+objectWithProps("c", 50))),
			wantErrors: []string{js + ".properties.child: " + propBudgetError},
		},
		{
			name: "property budget is per descriptor",
			payload: taskWithSpec(fmt.Sprintf(`{
				"output_schema": {"type": "json", "json_schema": %s},
				"input_schema": {"type": "json", "json_schema": %s}
			}`, objectWithProps("o", 60), objectWithProps("i", 60))),
		},
		{
			name:       "required not a string array",
			payload:    jsonOutput(`{"type": "object", "properties": {}, "required": ["a", 1], "additionalProperties": false}`),
			wantErrors: []string{js + ".required: must be an array of strings"},
		},
		{
			name:       "properties not an object",
			payload:    jsonOutput(`{"type": "object", "properties": [], "additionalProperties": false}`),
			wantErrors: []string{js + ".properties: must be an object"},
		},
		{
			name:       "additionalProperties sub-schema",
			payload:    jsonOutput(`{"type": "object", "additionalProperties": {"type": "object", "properties": {"x": {"not": {}}}}}`),
			wantErrors: []string{js + ".additionalProperties.properties.x: contains unsupported JSON Schema keyword 'not' per Task docs guidance"},
			wantWarnings: []string{
				js + ": " + strictHint,
				js + ".additionalProperties: " + strictHint,
			},
		},
	}

	runLintCases(t, KindTask, tests)
}

func TestTaskSpecSizeBudgets(t *testing.T) {
	t.Run("task_spec over budget", func(t *testing.T) {
		// {"output_schema":"<15000 chars>"} serializes to 15020 bytes
		spec := fmt.Sprintf(`{"output_schema": %s}`, quoted(strings.Repeat("x", 15000)))
		res := lintJSON(t, KindTask, taskWithSpec(spec))
		assert.Equal(t, []string{"$.task_spec: serialized size 15020 exceeds docs guidance limit 15000"}, lines(res.Errors))
	})

	t.Run("combined over budget", func(t *testing.T) {
		spec := fmt.Sprintf(`{"output_schema": %s}`, quoted(strings.Repeat("x", 10000)))
		payload := fmt.Sprintf(`{"processor": "base", "input": %s, "task_spec": %s}`, quoted(strings.Repeat("y", 8000)), spec)
		res := lintJSON(t, KindTask, payload)
		assert.Equal(t, []string{
			"$.task_spec: combined serialized size of task_spec + input (18022) exceeds docs guidance limit 18000",
		}, lines(res.Errors))
	})

	t.Run("non-ascii input counts escaped bytes", func(t *testing.T) {
		spec := fmt.Sprintf(`{"output_schema": %s}`, quoted(strings.Repeat("x", 9590)))
		ascii := fmt.Sprintf(`{"processor": "base", "input": %s, "task_spec": %s}`, quoted(strings.Repeat("e", 1400)), spec)
		accented := fmt.Sprintf(`{"processor": "base", "input": %s, "task_spec": %s}`, quoted(strings.Repeat("é", 1400)), spec)

		assert.Empty(t, lintJSON(t, KindTask, ascii).Errors)
		assert.Equal(t, []string{
			"$.task_spec: combined serialized size of task_spec + input (18012) exceeds docs guidance limit 18000",
		}, lines(lintJSON(t, KindTask, accented).Errors))
	})

	t.Run("missing input skips combined budget", func(t *testing.T) {
		spec := fmt.Sprintf(`{"output_schema": %s}`, quoted(strings.Repeat("x", 14000)))
		res := lintJSON(t, KindTask, fmt.Sprintf(`{"processor": "base", "task_spec": %s}`, spec))
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "$.input: is required", res.Errors[0].String())
	})
}

func TestSchemaStatsAreScopedToOneWalk(t *testing.T) {
	r := &run{c: issues.NewCollector(), tables: DefaultTables()}

	stats := r.walkSchema(jsonvalue.MustParse(nestedItems(3)), "$", schemaMode{})
	assert.Equal(t, 3, stats.MaxDepth)
	assert.Zero(t, stats.PropertyCount)

	stats = r.walkSchema(jsonvalue.MustParse(objectWithProps("p", 4)), "$", schemaMode{})
	assert.Equal(t, 4, stats.PropertyCount)
	assert.Equal(t, 2, stats.MaxDepth)
}
