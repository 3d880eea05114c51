package feature

import (
	"math"
	"sort"
)

// Vector is one sparse feature row, stored as parallel index/value slices
// sorted by column index. The sorted layout keeps every dot product's
// accumulation order fixed, so scores are reproducible bit for bit. Rows
// stay sparse end to end; at the configured vocabulary cap a dense
// representation would be tens of thousands of columns per row.
type Vector struct {
	Indices []int
	Values  []float64
}

// NewVector builds a sorted Vector from a column-to-weight map.
func NewVector(weights map[int]float64) Vector {
	indices := make([]int, 0, len(weights))
	for col := range weights {
		indices = append(indices, col)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	for i, col := range indices {
		values[i] = weights[col]
	}
	return Vector{Indices: indices, Values: values}
}

// Len returns the number of non-zero columns.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Dot returns the inner product with a dense weight slice.
func (v Vector) Dot(weights []float64) float64 {
	var sum float64
	for i, col := range v.Indices {
		sum += v.Values[i] * weights[col]
	}
	return sum
}

// Norm returns the L2 norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v.Values {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// scale multiplies every component in place.
func (v Vector) scale(factor float64) {
	for i := range v.Values {
		v.Values[i] *= factor
	}
}
