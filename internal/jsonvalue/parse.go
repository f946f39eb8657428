package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// Parse decodes a single JSON document.
//
// The document is checked with encoding/json first so that syntax errors
// carry the standard *json.SyntaxError (with its byte offset). Well-formed
// input is then walked with jsonparser, which preserves member order.
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		var discard any
		if err := json.Unmarshal(data, &discard); err != nil {
			return Value{}, err
		}
		return Value{}, errors.New("invalid JSON document")
	}

	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, err
	}
	return decode(raw, typ)
}

// MustParse is like Parse but panics on error. It is intended for tests and
// for package-level fixtures.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("jsonvalue: MustParse(%q): %v", s, err))
	}
	return v
}

func decode(raw []byte, typ jsonparser.ValueType) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case jsonparser.Number:
		return Number(string(raw)), nil
	case jsonparser.String:
		s, err := decodeString(raw)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case jsonparser.Array:
		return decodeArray(raw)
	case jsonparser.Object:
		return decodeObject(raw)
	default:
		return Value{}, fmt.Errorf("jsonvalue: unexpected value type %s", typ)
	}
}

// decodeString unescapes the body of a JSON string literal. jsonparser
// rejects unpaired surrogate escapes, which are valid JSON; those strings are
// decoded by encoding/json instead, which substitutes U+FFFD for each one.
func decodeString(raw []byte) (string, error) {
	if s, err := jsonparser.ParseString(raw); err == nil {
		return s, nil
	}
	quoted := make([]byte, 0, len(raw)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, raw...)
	quoted = append(quoted, '"')
	var s string
	if err := json.Unmarshal(quoted, &s); err != nil {
		return "", err
	}
	return s, nil
}

func decodeArray(raw []byte) (Value, error) {
	elems := make([]Value, 0)
	var firstErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = err
			return
		}
		elem, err := decode(value, typ)
		if err != nil {
			firstErr = err
			return
		}
		elems = append(elems, elem)
	})
	if err != nil {
		return Value{}, err
	}
	if firstErr != nil {
		return Value{}, firstErr
	}
	return Array(elems...), nil
}

func decodeObject(raw []byte) (Value, error) {
	obj := Value{kind: KindObject, members: make([]Member, 0), index: make(map[string]int)}
	err := jsonparser.ObjectEach(raw, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		member, err := decode(value, typ)
		if err != nil {
			return err
		}
		obj.set(string(key), member)
		return nil
	})
	if err != nil {
		return Value{}, err
	}
	return obj, nil
}
