package lint

import (
	"errors"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
)

// schemaResourceURL is where a descriptor is registered with the compiler.
// Only the file loader is installed, so unresolved remote $refs fail to
// compile instead of being fetched.
const schemaResourceURL = "https://paralint.invalid/schema.json"

var messagePrinter = message.NewPrinter(language.English)

type compiledSchema = jsonschema.Schema

// compileSchema compiles schema as a draft 2020-12 JSON Schema. A failure is
// reported as an error at path and nil is returned.
func (r *run) compileSchema(schema jsonvalue.Value, path string) *compiledSchema {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	if err := c.AddResource(schemaResourceURL, schema.Interface()); err != nil {
		r.c.AddError(path, "does not compile as JSON Schema: "+summarize(err))
		return nil
	}
	sch, err := c.Compile(schemaResourceURL)
	if err != nil {
		r.c.AddError(path, "does not compile as JSON Schema: "+summarize(err))
		return nil
	}
	return sch
}

// matchInput validates input against the compiled input schema and warns
// once per failing leaf. A mismatch is only a warning: the remote service
// applies its own reduced schema dialect.
func (r *run) matchInput(sch *compiledSchema, input jsonvalue.Value, path string) {
	err := sch.Validate(input.Interface())
	if err == nil {
		return
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		r.c.AddWarning(path, "does not match task_spec.input_schema: "+summarize(err))
		return
	}
	for _, leaf := range leafCauses(ve) {
		r.c.AddWarning(instancePath(path, leaf.InstanceLocation),
			"does not match task_spec.input_schema: "+leaf.ErrorKind.LocalizedString(messagePrinter))
	}
}

// leafCauses flattens a validation error tree to the errors with no causes.
func leafCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var flat []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, leafCauses(cause)...)
	}
	return flat
}

// instancePath renders a JSON Pointer token list under base. Numeric tokens
// are rendered as array indices.
func instancePath(base string, tokens []string) string {
	p := base
	for _, tok := range tokens {
		if i, err := strconv.Atoi(tok); err == nil && i >= 0 {
			p = pathutil.Index(p, i)
			continue
		}
		p = pathutil.Key(p, tok)
	}
	return p
}

// summarize folds a multi-line jsonschema error onto one line.
func summarize(err error) string {
	var parts []string
	for line := range strings.SplitSeq(err.Error(), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			parts = append(parts, strings.ReplaceAll(line, schemaResourceURL, ""))
		}
	}
	return strings.Join(parts, "; ")
}
