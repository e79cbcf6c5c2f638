package sorting

import (
	"cmp"
	"slices"
)

// SortInPlace sorts s with the standard library sort and returns s. Baseline
// for the hand-written algorithms; not stable.
func SortInPlace[T cmp.Ordered](s []T) []T {
	slices.Sort(s)
	return s
}

// SortedCopy returns a sorted copy of s, leaving s untouched.
func SortedCopy[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}
