package config

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/erraggy/paralint/linterrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their configuration key rather than the Go name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct returns the first validation failure as a
// *linterrors.ConfigError naming the configuration key.
func validateStruct(c *Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &linterrors.ConfigError{Cause: err}
	}
	fe := fieldErrs[0]
	return &linterrors.ConfigError{
		Option:  configKey(fe.Namespace()),
		Value:   fe.Value(),
		Message: ruleMessage(fe),
	}
}

// configKey turns a validator namespace ("Config.mcp.result_limit") into a
// configuration key ("mcp.result_limit").
func configKey(namespace string) string {
	_, key, ok := strings.Cut(namespace, ".")
	if !ok {
		return namespace
	}
	return key
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "required":
		return "must not be empty"
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gtefield":
		return "must not be less than " + snakeCase(fe.Param())
	default:
		return "failed the '" + fe.Tag() + "' rule"
	}
}

// snakeCase converts a Go field name to its key form ("ResultLimit" ->
// "result_limit").
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
