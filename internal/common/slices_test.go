package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinct(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		skip     func(string) bool
		expected []string
	}{
		{"nil", nil, nil, nil},
		{"keeps order", []string{"b", "a", "b", "c", "a"}, nil, []string{"b", "a", "c"}},
		{"skips empty", []string{"", "a", "", "a"}, func(s string) bool { return s == "" }, []string{"a"}},
		{"all skipped", []string{"", ""}, func(s string) bool { return s == "" }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distinct(tt.input, tt.skip))
		})
	}
}

func TestRanges(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 1))
	assert.True(t, IsInRange(0.0, 1.0, 1.0))
	assert.False(t, IsInRange(0, 2, 1))

	assert.False(t, IsInLeftOpenRange(0.0, 0.0, 1.0))
	assert.True(t, IsInLeftOpenRange(0.0, 0.25, 1.0))
	assert.True(t, IsInLeftOpenRange(0.0, 1.0, 1.0))
	assert.False(t, IsInLeftOpenRange(0.0, 1.5, 1.0))
}
