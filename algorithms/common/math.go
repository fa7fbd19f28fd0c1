package common

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Integer helpers shared by the pitch and scale code. Sequence arithmetic goes through gonum.

// Diff returns the pairwise differences of an ordered sequence using gonum,
// out[i] = data[i+1] - data[i]. Sequences shorter than two elements yield an empty slice.
func Diff(data []int) []int {
	if len(data) < 2 {
		return []int{}
	}

	values := ToFloat64(data)
	diffs := make([]float64, len(values)-1)
	floats.SubTo(diffs, values[1:], values[:len(values)-1])

	out := make([]int, len(diffs))
	for i, d := range diffs {
		out[i] = int(d)
	}
	return out
}

// Mod returns the Euclidean remainder of value by n, always in [0, n).
// Panics if n is zero, same as the % operator.
func Mod[T constraints.Integer](value, n T) T {
	r := value % n
	if r < 0 {
		r += n
	}
	return r
}

// Rotate returns a copy of data rotated left by k positions.
func Rotate[T any](data []T, k int) []T {
	if len(data) == 0 {
		return []T{}
	}
	k = Mod(k, len(data))

	out := make([]T, 0, len(data))
	out = append(out, data[k:]...)
	out = append(out, data[:k]...)
	return out
}

// ToFloat64 converts an integer slice for use with gonum routines.
func ToFloat64[T constraints.Integer](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Equal reports whether two integer sequences hold the same values in the same order.
func Equal[T constraints.Integer](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return floats.Equal(ToFloat64(a), ToFloat64(b))
}
