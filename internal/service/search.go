package service

import "strings"

// FilterByName returns the items whose name contains query as a
// case-insensitive substring, preserving order. An empty query matches
// everything. Plain linear scan; lists here are small.
func FilterByName[T any](items []T, name func(T) string, query string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(name(item)), q) {
			out = append(out, item)
		}
	}
	return out
}
