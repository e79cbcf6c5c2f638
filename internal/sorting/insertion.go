package sorting

import "cmp"

// InsertionSort rearranges s in place into non-decreasing order and returns s.
// Stable. Worst case O(n²), best case O(n) on already-sorted input.
func InsertionSort[T cmp.Ordered](s []T) []T {
	return InsertionSortFunc(s, cmp.Compare[T])
}

// InsertionSortFunc is InsertionSort with a caller-supplied comparison.
func InsertionSortFunc[T any](s []T, compare func(a, b T) int) []T {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && compare(key, s[j]) < 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
	return s
}
