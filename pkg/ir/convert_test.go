package ir

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnyScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{"nil", nil, Null{}},
		{"string", "minecraft:stone", String("minecraft:stone")},
		{"bool", true, Bool(true)},
		{"int", 7, Int(7)},
		{"int64", int64(-3), Int(-3)},
		{"uint8", uint8(200), Int(200)},
		{"integral float", 4.0, Int(4)},
		{"json number", json.Number("12"), Int(12)},
		{"value passthrough", String("x"), String("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromAnyRejectsFloats(t *testing.T) {
	_, err := FromAny(1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are not allowed")

	_, err = FromAny(json.Number("2.5"))
	require.Error(t, err)
}

func TestFromAnyFloatRange(t *testing.T) {
	_, err := FromAny(math.Exp2(63))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of int64 range")

	_, err = FromAny(-math.Exp2(64))
	require.Error(t, err)

	got, err := FromAny(-math.Exp2(63))
	require.NoError(t, err)
	assert.Equal(t, Int(math.MinInt64), got)

	got, err = FromAny(math.Exp2(62))
	require.NoError(t, err)
	assert.Equal(t, Int(1<<62), got)
}

func TestFromAnySortsMapKeys(t *testing.T) {
	got, err := FromAny(map[string]any{
		"z": 1,
		"a": map[string]any{"min": 1, "max": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"max":3,"min":1},"z":1}`, string(Marshal(got)))
}

func TestFromAnyNestedErrorPath(t *testing.T) {
	_, err := FromAny(map[string]any{
		"items": []any{"ok", 0.25},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `["items"]`)
	assert.Contains(t, err.Error(), "[1]")
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}
