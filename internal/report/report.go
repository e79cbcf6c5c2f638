// Package report formats comparison results for standard output.
package report

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
)

// WriteSystemInfo prints the host details a reader needs to interpret the
// timings: CPU brand, core count and the Go runtime.
func WriteSystemInfo(w io.Writer) {
	fmt.Fprintf(w, "CPU: %s\n", cpuid.CPU.BrandName)
	fmt.Fprintf(w, "Cores: %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

// Write prints one block per result: the size, each algorithm's total elapsed
// time to six decimal places, and a separator line.
func Write(w io.Writer, results []bench.Result) {
	for _, entry := range results {
		fmt.Fprintf(w, "Size: %d\n", entry.Size)
		fmt.Fprintf(w, "  insertion_sort: %.6f s\n", entry.InsertionSort)
		fmt.Fprintf(w, "  merge_sort    : %.6f s\n", entry.MergeSort)
		fmt.Fprintf(w, "  sort_in_place : %.6f s\n", entry.SortInPlace)
		fmt.Fprintf(w, "  sorted_copy   : %.6f s\n", entry.SortedCopy)
		fmt.Fprintln(w, strings.Repeat("-", 40))
	}
}
