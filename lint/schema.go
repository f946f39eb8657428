package lint

import (
	"fmt"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
)

// SchemaStats accumulates over one schema descriptor walk. PropertyCount is
// the running total of declared properties across the whole descriptor and
// MaxDepth the deepest node visited. A fresh SchemaStats is used for every
// descriptor; nothing carries over between descriptors or calls.
type SchemaStats struct {
	PropertyCount int
	MaxDepth      int
}

// schemaMode selects the policy for input and output schemas. Output
// schemas gate structured-result parsing and are held to the stricter bar.
type schemaMode struct {
	// output turns unsupported keywords into errors and enables the
	// additionalProperties hint.
	output bool
}

// taskSpec checks the task_spec member of a Task request.
func (r *run) taskSpec(spec, root jsonvalue.Value, path string) {
	switch spec.Kind() {
	case jsonvalue.KindNull, jsonvalue.KindString:
		return
	case jsonvalue.KindObject:
	default:
		r.c.AddError(path, "must be a string or object")
		return
	}

	out, ok := spec.Get("output_schema")
	if !ok {
		r.c.AddError(path, "must contain output_schema")
		return
	}
	if schema, sp, ok := r.schemaDescriptor(out, pathutil.Key(path, "output_schema"), schemaMode{output: true}); ok && r.compile {
		r.compileSchema(schema, sp)
	}

	var inputSchema *compiledSchema
	if in, ok := spec.Lookup("input_schema"); ok {
		if schema, sp, ok := r.schemaDescriptor(in, pathutil.Key(path, "input_schema"), schemaMode{}); ok && r.compile {
			inputSchema = r.compileSchema(schema, sp)
		}
	}

	lim := r.limits()
	size := spec.CompactSize()
	if size > lim.MaxTaskSpecBytes {
		r.c.AddError(path, fmt.Sprintf("serialized size %d exceeds docs guidance limit %d", size, lim.MaxTaskSpecBytes))
	}
	input, hasInput := root.Get("input")
	if !hasInput {
		return
	}
	if combined := size + input.CompactSize(); combined > lim.MaxTaskSpecAndInput {
		r.c.AddError(path, fmt.Sprintf(
			"combined serialized size of task_spec + input (%d) exceeds docs guidance limit %d",
			combined, lim.MaxTaskSpecAndInput))
	}
	if inputSchema != nil && input.Kind() == jsonvalue.KindObject {
		r.matchInput(inputSchema, input, pathutil.Key(pathutil.Root, "input"))
	}
}

// schemaDescriptor resolves the wrapper forms a schema descriptor may take
// and walks the JSON Schema inside, if any. It returns the walked schema and
// its path; ok is false when no deep check applied.
//
// Disambiguation:
//   - a bare string is a text schema shorthand and is accepted as is
//   - type "auto" is accepted without a deep check
//   - a json_schema member is the schema; type should be absent or "json"
//   - type "json" without json_schema is an error
//   - with type absent or "text", the object itself is treated as a schema
//     only when it has a schema-shaped key (see Tables.SchemaShapedKeys);
//     otherwise it is an opaque wrapper and skipped
//   - any other type warns and falls back to the schema-shaped key rule
func (r *run) schemaDescriptor(v jsonvalue.Value, path string, mode schemaMode) (jsonvalue.Value, string, bool) {
	switch v.Kind() {
	case jsonvalue.KindNull:
		r.c.AddError(path, "must not be null")
		return jsonvalue.Value{}, "", false
	case jsonvalue.KindString:
		return jsonvalue.Value{}, "", false
	case jsonvalue.KindObject:
	default:
		r.c.AddError(path, "must be a string or object")
		return jsonvalue.Value{}, "", false
	}

	typ, hasType := v.Lookup("type")
	if isString(typ, "auto") {
		return jsonvalue.Value{}, "", false
	}

	if inner, ok := v.Get("json_schema"); ok {
		if hasType && !isString(typ, "json") {
			r.c.AddWarning(path, "json_schema is present but type is not 'json'")
		}
		ip := pathutil.Key(path, "json_schema")
		if !r.object(inner, ip) {
			return jsonvalue.Value{}, "", false
		}
		r.walkSchema(inner, ip, mode)
		return inner, ip, true
	}

	switch {
	case isString(typ, "json"):
		r.c.AddError(path, "type='json' requires a nested 'json_schema' object")
		return jsonvalue.Value{}, "", false
	case !hasType || isString(typ, "text"):
	default:
		r.c.AddWarning(path, fmt.Sprintf("unrecognized schema wrapper type '%s'", typ.Display()))
	}

	if !r.schemaShaped(v) {
		return jsonvalue.Value{}, "", false
	}
	r.walkSchema(v, path, mode)
	return v, path, true
}

// schemaShaped reports whether obj carries any key that marks it as a JSON
// Schema node. A data-shaped wrapper that happens to use one of these keys
// is misclassified; that is accepted in favor of never deep-checking
// unknown wrapper shapes.
func (r *run) schemaShaped(obj jsonvalue.Value) bool {
	for _, k := range r.tables.SchemaShapedKeys {
		if obj.Has(k) {
			return true
		}
	}
	return false
}

// walkSchema checks one schema descriptor with fresh stats.
func (r *run) walkSchema(schema jsonvalue.Value, path string, mode schemaMode) SchemaStats {
	var stats SchemaStats
	r.schemaNode(schema, path, &stats, 1, mode)
	return stats
}

// schemaNode checks node at the given depth and recurses into properties,
// items, and object-valued additionalProperties. Exceeding the depth limit
// is reported at every offending node but does not stop the walk, so
// property totals and deeper violations are still observed.
func (r *run) schemaNode(node jsonvalue.Value, path string, stats *SchemaStats, depth int, mode schemaMode) {
	lim := r.limits()
	stats.MaxDepth = max(stats.MaxDepth, depth)
	if depth > lim.MaxSchemaDepth {
		r.c.AddError(path, fmt.Sprintf("nesting depth exceeds docs guidance (%d)", lim.MaxSchemaDepth))
	}
	if node.Kind() != jsonvalue.KindObject {
		return
	}

	for _, m := range node.Members() {
		if !r.tables.isUnsupportedKeyword(m.Key) {
			continue
		}
		msg := fmt.Sprintf("contains unsupported JSON Schema keyword '%s' per Task docs guidance", m.Key)
		if mode.output {
			r.c.AddError(path, msg)
		} else {
			r.c.AddWarning(path, msg)
		}
	}

	if typ, _ := node.Get("type"); isString(typ, "object") {
		if props, ok := node.Lookup("properties"); ok {
			pp := pathutil.Key(path, "properties")
			if r.object(props, pp) {
				stats.PropertyCount += props.Len()
				if stats.PropertyCount > lim.MaxSchemaProperties {
					r.c.AddError(path, fmt.Sprintf("total JSON schema properties exceed docs guidance (%d)", lim.MaxSchemaProperties))
				}
				for _, m := range props.Members() {
					r.schemaNode(m.Value, pathutil.Key(pp, m.Key), stats, depth+1, mode)
				}
			}
		}
		if ap, _ := node.Get("additionalProperties"); mode.output && !isFalse(ap) {
			r.c.AddWarning(path, "set additionalProperties=false for more stable Task outputs")
		}
		if req, ok := node.Lookup("required"); ok && !stringArray(req) {
			r.c.AddError(pathutil.Key(path, "required"), msgStringArray)
		}
	}

	if items, ok := node.Get("items"); ok && items.Kind() == jsonvalue.KindObject {
		r.schemaNode(items, pathutil.Key(path, "items"), stats, depth+1, mode)
	}
	if ap, ok := node.Get("additionalProperties"); ok && ap.Kind() == jsonvalue.KindObject {
		r.schemaNode(ap, pathutil.Key(path, "additionalProperties"), stats, depth+1, mode)
	}
}

func isString(v jsonvalue.Value, want string) bool {
	s, ok := v.Str()
	return ok && s == want
}

func isFalse(v jsonvalue.Value) bool {
	b, ok := v.Bool()
	return ok && !b
}
