package bench

import (
	"slices"
	"time"
)

// Benchmark invokes fn repeats times and returns the total wall-clock seconds.
// Every invocation gets a fresh copy of data, so in-place sorts never see
// previously sorted state and the caller's slice is never mutated. The total
// is not divided by repeats.
func Benchmark(fn func([]int) []int, data []int, repeats int) float64 {
	start := time.Now()
	for i := 0; i < repeats; i++ {
		fn(slices.Clone(data))
	}
	return time.Since(start).Seconds()
}
