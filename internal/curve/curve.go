// Package curve computes theoretical complexity curves and rescales them onto
// the range of measured timings for plotting.
package curve

import "math"

// NSquared returns n² for every size.
func NSquared(sizes []int) []float64 {
	values := make([]float64, len(sizes))
	for i, n := range sizes {
		values[i] = float64(n) * float64(n)
	}
	return values
}

// NLogN returns n·log₂(n) for every size.
func NLogN(sizes []int) []float64 {
	values := make([]float64, len(sizes))
	for i, n := range sizes {
		values[i] = float64(n) * math.Log2(float64(n))
	}
	return values
}

// Scale multiplies values by a single factor so that its last element equals
// the last element of reference. The inputs are returned unchanged when either
// is empty or the last value is zero. This matches only the endpoint; it is a
// visual overlay, not a fit.
func Scale(values, reference []float64) []float64 {
	if len(values) == 0 || len(reference) == 0 || values[len(values)-1] == 0 {
		return values
	}
	factor := reference[len(reference)-1] / values[len(values)-1]
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v * factor
	}
	return scaled
}
