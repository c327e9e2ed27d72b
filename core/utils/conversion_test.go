package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt(42))
	assert.Equal(t, 42, ToInt(42.9))
	assert.Equal(t, 42, ToInt(" 42 "))
	assert.Equal(t, 42, ToInt(json.Number("42")))
	assert.Equal(t, 0, ToInt("x"))
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{1.5, 1.5, true},
		{3, 3, true},
		{"2.25", 2.25, true},
		{json.Number("7"), 7, true},
		{"abc", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "3", ToString(3.0))
	assert.Equal(t, "0.5", ToString(0.5))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "", ToString(nil))
}
