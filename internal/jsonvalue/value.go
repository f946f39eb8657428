package jsonvalue

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is any JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable decoded JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	// s holds the decoded text of a string or the literal of a number.
	s     string
	elems []Value
	// members keeps document order; index maps a key to its position.
	members []Member
	index   map[string]int
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a number value from its JSON literal (e.g. "42", "1.5e3").
// The literal is not checked.
func Number(literal string) Value { return Value{kind: KindNumber, s: literal} }

// Int returns an integer number value.
func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

// Array returns an array holding elems in order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

// Object returns an object holding members in order. A repeated key keeps
// the first position and the last value.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, members: make([]Member, 0, len(members)), index: make(map[string]int, len(members))}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func (v *Value) set(key string, val Value) {
	if i, ok := v.index[key]; ok {
		v.members[i].Value = val
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean held by v and whether v is a boolean.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Str returns the string held by v and whether v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Literal returns the literal text of a number, or "" for other kinds.
func (v Value) Literal() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.s
}

// IsInteger reports whether v is a number written without a fraction or
// exponent.
func (v Value) IsInteger() bool {
	return v.kind == KindNumber && !strings.ContainsAny(v.s, ".eE")
}

// Float returns the numeric value of v. Non-numbers yield 0. Integers
// beyond float64 precision are rounded, which is sufficient for the
// threshold comparisons linting needs.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}
	// Out-of-range literals parse to a signed infinity.
	f, _ := strconv.ParseFloat(v.s, 64)
	return f
}

// Len returns the number of elements of an array or members of an object.
// Other kinds report 0.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Elems returns the elements of an array. The slice must not be modified.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.elems
}

// Members returns the members of an object in document order. The slice
// must not be modified.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Get returns the member named key and whether it is present.
// It returns false for non-objects.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.members[i].Value, true
}

// Has reports whether v is an object containing key, whatever its value.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Lookup returns the member named key only when it is present and not null.
// Validators use it for optional fields where null means "not set".
func (v Value) Lookup(key string) (Value, bool) {
	m, ok := v.Get(key)
	if !ok || m.kind == KindNull {
		return Value{}, false
	}
	return m, true
}

// Truthy reports whether v counts as "set" in a boolean context: false,
// null, zero, and empty strings, arrays, and objects are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.Float() != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return len(v.elems) > 0
	case KindObject:
		return len(v.members) > 0
	default:
		return false
	}
}

// Display renders a scalar the way it is shown in metadata-length checks:
// strings verbatim, numbers as their literal, and booleans as True/False.
// Arrays and objects render as compact JSON.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return v.s
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindNull:
		return "None"
	default:
		return string(v.AppendCompact(nil))
	}
}

// Interface converts v to the generic Go form produced by encoding/json with
// UseNumber: nil, bool, json.Number, string, []any, and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
