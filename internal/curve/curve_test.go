package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	t.Run("matches the last element of the reference", func(t *testing.T) {
		assert := assert.New(t)
		scaled := Scale([]float64{0, 0, 4}, []float64{1, 2, 10})
		assert.Len(scaled, 3)
		assert.InDelta(10, scaled[2], 1e-12)
		assert.Equal(0.0, scaled[0])
	})

	t.Run("scales every element by the same factor", func(t *testing.T) {
		scaled := Scale([]float64{1, 2, 4}, []float64{0, 0, 8})
		assert.Equal(t, []float64{2, 4, 8}, scaled)
	})

	t.Run("empty values stay empty", func(t *testing.T) {
		assert.Empty(t, Scale([]float64{}, []float64{1, 2, 3}))
	})

	t.Run("empty reference is identity", func(t *testing.T) {
		values := []float64{1, 2, 3}
		assert.Equal(t, values, Scale(values, []float64{}))
	})

	t.Run("all-zero values returned unchanged", func(t *testing.T) {
		values := []float64{0, 0, 0}
		assert.Equal(t, values, Scale(values, []float64{1, 2, 3}))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		values := []float64{1, 2, 4}
		Scale(values, []float64{0, 0, 8})
		assert.Equal(t, []float64{1, 2, 4}, values)
	})
}

func TestCurves(t *testing.T) {
	t.Run("NSquared", func(t *testing.T) {
		assert.Equal(t, []float64{100, 10_000}, NSquared([]int{10, 100}))
	})

	t.Run("NLogN", func(t *testing.T) {
		assert := assert.New(t)
		values := NLogN([]int{1, 2, 8})
		assert.Equal(0.0, values[0])
		assert.InDelta(2, values[1], 1e-12)
		assert.InDelta(24, values[2], 1e-12)
	})
}
