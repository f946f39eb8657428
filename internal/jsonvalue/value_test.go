package jsonvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "boolean", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.False(t, v.Truthy())
}

func TestIsInteger(t *testing.T) {
	tests := []struct {
		literal string
		want    bool
	}{
		{"0", true},
		{"-7", true},
		{"12345678901234567890", true},
		{"1.0", false},
		{"1e3", false},
		{"2E-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.literal).IsInteger())
		})
	}
	assert.False(t, String("1").IsInteger())
	assert.False(t, Bool(true).IsInteger())
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 1500.0, Number("1.5e3").Float(), 0)
	assert.InDelta(t, -2.0, Int(-2).Float(), 0)
	assert.Zero(t, String("3").Float())
}

func TestObjectOrderAndDuplicates(t *testing.T) {
	v := Object(
		Member{Key: "b", Value: Int(1)},
		Member{Key: "a", Value: Int(2)},
		Member{Key: "b", Value: Int(3)},
	)

	require.Equal(t, 2, v.Len())
	members := v.Members()
	assert.Equal(t, "b", members[0].Key)
	assert.Equal(t, "3", members[0].Value.Literal())
	assert.Equal(t, "a", members[1].Key)
}

func TestGetLookupHas(t *testing.T) {
	v := MustParse(`{"a": null, "b": "x"}`)

	got, ok := v.Get("a")
	assert.True(t, ok)
	assert.True(t, got.IsNull())

	_, ok = v.Lookup("a")
	assert.False(t, ok, "Lookup treats null as absent")

	got, ok = v.Lookup("b")
	require.True(t, ok)
	s, isStr := got.Str()
	assert.True(t, isStr)
	assert.Equal(t, "x", s)

	assert.True(t, v.Has("a"))
	assert.False(t, v.Has("c"))

	_, ok = String("x").Get("a")
	assert.False(t, ok, "non-objects have no members")
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Int(0), false},
		{"zero float", Number("0.0"), false},
		{"nonzero", Number("0.5"), true},
		{"empty string", String(""), false},
		{"string", String("x"), true},
		{"empty array", Array(), false},
		{"array", Array(Null()), true},
		{"empty object", Object(), false},
		{"object", Object(Member{Key: "k", Value: Null()}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Truthy())
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "hello", String("hello").Display())
	assert.Equal(t, "1.50", Number("1.50").Display())
	assert.Equal(t, "True", Bool(true).Display())
	assert.Equal(t, "False", Bool(false).Display())
	assert.Equal(t, "None", Null().Display())
	assert.Equal(t, `[1,"a"]`, Array(Int(1), String("a")).Display())
}

func TestInterface(t *testing.T) {
	v := MustParse(`{"n": 1.5, "s": "x", "b": true, "z": null, "a": [1]}`)

	got := v.Interface()
	want := map[string]any{
		"n": json.Number("1.5"),
		"s": "x",
		"b": true,
		"z": nil,
		"a": []any{json.Number("1")},
	}
	assert.Equal(t, want, got)
}
