package utils

import "sort"

// SortByDepth stably sorts items by an externally supplied depth value,
// shallowest first. Stability preserves registration order among concepts
// of equal depth.
func SortByDepth[T any](items []T, depth func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return depth(items[i]) < depth(items[j])
	})
}

// Filter returns the items for which keep returns true, preserving order
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
