package sorting

import (
	"math/rand"
	"slices"
	"testing"
)

func randomInts(n int) []int {
	rng := rand.New(rand.NewSource(42))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(20_001) - 10_000
	}
	return data
}

func BenchmarkSorts(b *testing.B) {
	data := randomInts(5_000)

	b.Run("InsertionSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			InsertionSort(slices.Clone(data))
		}
	})
	b.Run("MergeSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			MergeSort(data)
		}
	})
	b.Run("SortInPlace", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			SortInPlace(slices.Clone(data))
		}
	})
	b.Run("SortedCopy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			SortedCopy(data)
		}
	})
}
