package xmap

import "sort"

// Keys returns the slice of a map keys, in no particular order.
func Keys[K comparable, V any](m map[K]V) []K {
	l := make([]K, 0, len(m))
	for k := range m {
		l = append(l, k)
	}
	return l
}

// SortedKeys returns the slice of a string-keyed map keys, sorted.
func SortedKeys[V any](m map[string]V) []string {
	l := Keys(m)
	sort.Strings(l)
	return l
}
