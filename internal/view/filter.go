package view

import "strings"

// Filter returns the names that contain term, case-insensitively, preserving
// their original relative order. An empty term matches everything. An empty
// result is a valid "no matches" state, not an error.
func Filter(names []string, term string) []string {
	if term == "" {
		return names
	}
	needle := strings.ToLower(term)

	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
