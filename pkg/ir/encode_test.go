package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"nil", nil, "null"},
		{"null", Null{}, "null"},
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
		{"int", Int(42), "42"},
		{"negative int", Int(-100), "-100"},
		{"max int64", Int(9223372036854775807), "9223372036854775807"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"empty array", Array{}, "[]"},
		{"empty object", NewObject(), "{}"},
		{"array of ints", Array{Int(1), Int(2), Int(3)}, "[1,2,3]"},
		{"simple object", NewObject(O("a", Int(1))), `{"a":1}`},
		{"array with empty object", Array{NewObject()}, "[{}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(Marshal(tt.input)))
		})
	}
}

func TestMarshalInsertionOrder(t *testing.T) {
	obj := NewObject(
		O("zebra", Int(1)),
		O("alpha", Int(2)),
		O("beta", Int(3)),
	)

	assert.Equal(t, `{"zebra":1,"alpha":2,"beta":3}`, string(Marshal(obj)))
}

func TestObjectSetKeepsPosition(t *testing.T) {
	obj := NewObject(O("a", Int(1)), O("b", Int(2)))
	obj.Set("a", Int(3))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.Equal(t, `{"a":3,"b":2}`, string(Marshal(obj)))
}

func TestObjectSetNilStoresNull(t *testing.T) {
	obj := NewObject()
	obj.Set("nbt", nil)

	assert.Equal(t, `{"nbt":null}`, string(Marshal(obj)))
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"less than", String("a<b"), `"a<b"`},
		{"greater than", String("a>b"), `"a>b"`},
		{"ampersand", String("a&b"), `"a&b"`},
		{"quote", String(`say "hi"`), `"say \"hi\""`},
		{"backslash", String(`a\b`), `"a\\b"`},
		{"newline", String("a\nb"), `"a\nb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(Marshal(tt.input)))
		})
	}
}

func TestMarshalNFCNormalization(t *testing.T) {
	// "e" + combining acute accent normalizes to the precomposed form
	decomposed := String("cafe\u0301")
	assert.Equal(t, "\"caf\u00e9\"", string(Marshal(decomposed)))
}

func TestMarshalIndent(t *testing.T) {
	obj := NewObject(
		O("criteria", NewObject(
			O("default", NewObject(O("trigger", String("minecraft:impossible")))),
		)),
		O("requirements", Array{Strings("a", "b"), Array{}}),
		O("rewards", NewObject()),
	)

	expected := `{
  "criteria": {
    "default": {
      "trigger": "minecraft:impossible"
    }
  },
  "requirements": [
    [
      "a",
      "b"
    ],
    []
  ],
  "rewards": {}
}`
	assert.Equal(t, expected, string(MarshalIndent(obj, "  ")))
}

func TestMarshalIndentIsValidJSON(t *testing.T) {
	obj := NewObject(
		O("title", String("Stew")),
		O("icon", NewObject(O("item", String("minecraft:mushroom_stew")))),
		O("hidden", Bool(true)),
		O("levels", Array{Int(1), Int(2)}),
	)

	want, err := json.MarshalIndent(map[string]any{
		"title":  "Stew",
		"icon":   map[string]any{"item": "minecraft:mushroom_stew"},
		"hidden": true,
		"levels": []int{1, 2},
	}, "", "  ")
	require.NoError(t, err)

	// Key order differs from encoding/json; compare decoded trees.
	var got, expected map[string]any
	require.NoError(t, json.Unmarshal(MarshalIndent(obj, "  "), &got))
	require.NoError(t, json.Unmarshal(want, &expected))
	assert.Equal(t, expected, got)
}

func TestObjectMarshalJSONViaStdlib(t *testing.T) {
	obj := NewObject(O("b", Int(1)), O("a", Strings("x")))

	data, err := json.Marshal(struct {
		Doc *Object `json:"doc"`
	}{Doc: obj})
	require.NoError(t, err)
	assert.Equal(t, `{"doc":{"b":1,"a":["x"]}}`, string(data))
}

func TestMarshalIdempotent(t *testing.T) {
	obj := NewObject(O("x", Array{Int(1), NewObject(O("y", Bool(false)))}))

	first := Marshal(obj)
	second := Marshal(obj)
	assert.Equal(t, first, second)
}

func TestHashStable(t *testing.T) {
	a := NewObject(O("criteria", NewObject()))
	b := NewObject(O("criteria", NewObject()))
	c := NewObject(O("parent", String("x")))

	assert.Equal(t, Hash(DomainAdvancement, a), Hash(DomainAdvancement, b))
	assert.NotEqual(t, Hash(DomainAdvancement, a), Hash(DomainAdvancement, c))
	assert.Len(t, Hash(DomainAdvancement, a), 64)
}

func TestHashBytes_IgnoresIndentation(t *testing.T) {
	obj := NewObject(O("criteria", NewObject(O("a", Int(1)))))
	assert.Equal(t, Hash(DomainAdvancement, obj), HashBytes(DomainAdvancement, Marshal(obj)))
	assert.NotEqual(t, Hash(DomainAdvancement, obj), HashBytes(DomainAdvancement, MarshalIndent(obj, "  ")))
}
