package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "single element",
			input:    []string{"Acme"},
			expected: []string{"Acme"},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  Acme  ", "Acme Holdings  ", "  Acme West"},
			expected: []string{"Acme", "Acme Holdings", "Acme West"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"Acme", "Acme Holdings", "Acme", "Acme West", "Acme Holdings"},
			expected: []string{"Acme", "Acme Holdings", "Acme West"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"Acme", "", "  ", "Acme Holdings"},
			expected: []string{"Acme", "Acme Holdings"},
		},
		{
			name:     "combined: trim, dedupe, remove empty",
			input:    []string{"  Acme ", "Acme Holdings", "Acme", "", "  ", "Acme Holdings"},
			expected: []string{"Acme", "Acme Holdings"},
		},
		{
			name:     "preserves case",
			input:    []string{"Acme", "acme", "ACME"},
			expected: []string{"Acme", "acme", "ACME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeAndTrim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
