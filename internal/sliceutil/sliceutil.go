// Package sliceutil contains common helpers for slice operations.
package sliceutil

// Dedup removes repeated elements using built-in equality, keeping the
// first occurrence of each value. The input is not modified.
func Dedup[T comparable](list []T) []T {
	seen := make(map[T]struct{}, len(list))
	result := make([]T, 0, len(list))
	for _, x := range list {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		result = append(result, x)
	}
	return result
}

// Filter returns the elements satisfying keep, in their original order.
func Filter[T any](list []T, keep func(T) bool) []T {
	result := make([]T, 0, len(list))
	for _, x := range list {
		if keep(x) {
			result = append(result, x)
		}
	}
	return result
}
