package ui

import "strings"

// filterPaths returns the indexes of paths containing the query,
// case-insensitively, preserving candidate order. An empty query matches
// everything.
func filterPaths(paths []string, query string) []int {
	matches := make([]int, 0, len(paths))
	query = strings.ToLower(query)
	for i, p := range paths {
		if query == "" || strings.Contains(strings.ToLower(p), query) {
			matches = append(matches, i)
		}
	}
	return matches
}
