package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only separators", input: " , ,", expected: nil},
		{name: "trims elements", input: " v1 , v2", expected: []string{"v1", "v2"}},
		{name: "keeps duplicates", input: "v1,v1", expected: []string{"v1", "v1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, ","))
		})
	}
}

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []string{}, expected: []string{}},
		{name: "single element", input: []string{"kafka:9092"}, expected: []string{"kafka:9092"}},
		{
			name:     "duplicates and blanks removed in order",
			input:    []string{"  b:9092 ", "a:9092", "b:9092", "", "   "},
			expected: []string{"b:9092", "a:9092"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
