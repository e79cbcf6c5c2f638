package bench

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/Koliatoday/goit-algo-hw-04/internal/sorting"
)

// Defaults for a comparison run. DefaultSizes returns a fresh slice so callers
// can never mutate a shared default.
const (
	DefaultRepeats = 5
	DefaultSeed    = 42
	DefaultLow     = -10_000
	DefaultHigh    = 10_000
)

func DefaultSizes() []int {
	return []int{10, 100, 1_000, 5_000}
}

// RandomDataset draws size integers uniformly from [low, high], both bounds
// inclusive. The same rng state always yields the same dataset.
func RandomDataset(rng *rand.Rand, size, low, high int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = low + rng.Intn(high-low+1)
	}
	return data
}

// Compare benchmarks all four sorting algorithms for each requested size and
// returns one Result per size, in size iteration order.
//
// The generator is seeded once for the whole run, so a (seed, sizes, range)
// triple always reproduces the same datasets. Each algorithm is benchmarked
// against copies of the same base dataset for its size. Timings are wall-clock
// and make no reproducibility promise.
func Compare(log *slog.Logger, sizes []int, repeats int, seed int64, low, high int) []Result {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if sizes == nil {
		sizes = DefaultSizes()
	}
	if repeats <= 0 {
		repeats = DefaultRepeats
	}

	rng := rand.New(rand.NewSource(seed))
	results := make([]Result, 0, len(sizes))

	for _, size := range sizes {
		log.Info("benchmarking", "size", size, "repeats", repeats)
		base := RandomDataset(rng, size, low, high)
		entry := Result{
			Size:          size,
			InsertionSort: Benchmark(sorting.InsertionSort[int], base, repeats),
			MergeSort:     Benchmark(sorting.MergeSort[int], base, repeats),
			SortInPlace:   Benchmark(sorting.SortInPlace[int], base, repeats),
			SortedCopy:    Benchmark(sorting.SortedCopy[int], base, repeats),
		}
		log.Info("size done",
			"size", size,
			"insertion_sort", entry.InsertionSort,
			"merge_sort", entry.MergeSort,
			"sort_in_place", entry.SortInPlace,
			"sorted_copy", entry.SortedCopy,
		)
		results = append(results, entry)
	}

	return results
}
