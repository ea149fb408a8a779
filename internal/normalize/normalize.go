// Package normalize converts raw column labels into unique, non-empty
// relational identifiers.
package normalize

import (
	"fmt"
	"strings"
)

// Headers normalizes a sequence of raw column labels, preserving order.
// Labels are trimmed; an empty label is replaced by a placeholder built
// from its 1-based position. A label that collides with an earlier name
// gets the first unused numeric suffix starting at _2, so the first
// occurrence keeps the unsuffixed name.
func Headers(labels []string) []string {
	names := make([]string, 0, len(labels))
	taken := make(map[string]struct{}, len(labels))

	for i, label := range labels {
		name := strings.TrimSpace(label)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		base := name
		for n := 2; ; n++ {
			if _, exists := taken[name]; !exists {
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}

		taken[name] = struct{}{}
		names = append(names, name)
	}

	return names
}
