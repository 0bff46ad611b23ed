package errfuncs

import (
	"math"
)

type abs int8

// Abs returns the absolute error function: the sum of |e| over every value in the error vector.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Error(errs []float64) float64 {
	var sum float64
	for _, e := range errs {
		sum += math.Abs(e)
	}

	return sum
}
