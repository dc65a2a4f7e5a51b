package jsonv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Compact(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Null{}, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(0), "0"},
		{Number(42), "42"},
		{Number(-10), "-10"},
		{Number(3.14), "3.14"},
		{Number(0.001), "0.001"},
		{Number(1e21), "1e+21"},
		{Number(1e-7), "1e-7"},
		{String(""), `""`},
		{String("hello"), `"hello"`},
		{Array{}, "[]"},
		{Array{Number(1), Number(2), Number(3)}, "[1,2,3]"},
		{Array{Array{}, Array{Null{}}}, "[[],[null]]"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Serialize(test.value, 0))
	}
}

func TestSerialize_NumberFidelity(t *testing.T) {
	// Integral floats must not gain spurious digits.
	v, err := Parse("42.0")
	require.NoError(t, err)
	assert.Equal(t, "42", Serialize(v, 0))

	v, err = Parse("3.14")
	require.NoError(t, err)
	assert.Equal(t, "3.14", Serialize(v, 0))
}

func TestSerialize_StringEscaping(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line1\nline2", `"line1\nline2"`},
		{"tab\there", `"tab\there"`},
		{"\b\f\r", `"\b\f\r"`},
		{"\x01\x1f", "\"\\u0001\\u001f\""},
		{"naïve 中文 😀", `"naïve 中文 😀"`}, // non-ASCII passes through
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Serialize(String(test.value), 0))
	}
}

func TestSerialize_ObjectCompact(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number(1))
	obj.Set("b", Array{Bool(true), Null{}})
	inner := NewObject()
	obj.Set("c", inner)

	assert.Equal(t, `{"a":1,"b":[true,null],"c":{}}`, Serialize(obj, 0))
}

func TestSerialize_Pretty(t *testing.T) {
	obj := NewObject()
	obj.Set("key", String("value"))

	pretty := Serialize(obj, 2)
	assert.Equal(t, "{\n  \"key\": \"value\"\n}", pretty)
	assert.Contains(t, pretty, "\n")

	compact := Serialize(obj, 0)
	assert.NotContains(t, compact, "\n")
}

func TestSerialize_PrettyNested(t *testing.T) {
	v, err := Parse(`{"users":[{"id":1}],"empty":[],"none":{}}`)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"{",
		`    "users": [`,
		"        {",
		`            "id": 1`,
		"        }",
		"    ],",
		`    "empty": [],`,
		`    "none": {}`,
		"}",
	}, "\n")
	assert.Equal(t, expected, Serialize(v, 4))
}

func TestSerialize_EmptyContainersAnyIndent(t *testing.T) {
	for _, indent := range []int{0, 2, 4, 8} {
		assert.Equal(t, "{}", Serialize(NewObject(), indent))
		assert.Equal(t, "[]", Serialize(Array{}, indent))
	}
}

func TestSerialize_PrettyRoundTrip(t *testing.T) {
	v, err := Parse(`{"a":[1,{"b":"c"}],"d":null}`)
	require.NoError(t, err)

	again, err := Parse(Serialize(v, 2))
	require.NoError(t, err)
	assert.True(t, Equal(v, again))
}

func TestSerialize_OrderPreserved(t *testing.T) {
	v, err := Parse(`{"a":1,"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, Serialize(v, 0))

	v, err = Parse(`{"b":2,"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, Serialize(v, 0))
}
