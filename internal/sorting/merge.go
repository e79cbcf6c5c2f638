package sorting

import "cmp"

// MergeSort returns a new slice holding the elements of s in non-decreasing
// order. s is never mutated. Stable, O(n log n).
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Compare[T])
}

// MergeSortFunc is MergeSort with a caller-supplied comparison.
func MergeSortFunc[T any](s []T, compare func(a, b T) int) []T {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	return mergeRuns(MergeSortFunc(s[:mid], compare), MergeSortFunc(s[mid:], compare), compare)
}

// mergeRuns merges two sorted runs into a fresh slice. Ties take the left
// element first, which keeps the overall sort stable.
func mergeRuns[T any](left, right []T, compare func(a, b T) int) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
