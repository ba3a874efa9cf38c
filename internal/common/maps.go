package common

import "sort"

// SortedKeys returns the keys of a string-keyed map in sorted order.
// Used wherever map iteration must be deterministic.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
