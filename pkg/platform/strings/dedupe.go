// Package strings holds small list-cleaning helpers for caller-supplied
// string slices.
package strings

import (
	"strings"
)

// DedupeAndTrim trims whitespace from each element and drops empties and
// repeats, preserving first-seen order. Employer alternate names pass
// through here before persisting.
//
//	DedupeAndTrim([]string{"  Acme ", "Acme Holdings", "Acme", ""})
//	// Returns: []string{"Acme", "Acme Holdings"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
