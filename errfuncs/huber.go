package errfuncs

import (
	"math"
)

type huber struct {
	δ float64
}

// Huber returns the Huber error function. δ controls the bounds of the transition between MSE
// (for |e| <= δ) and Abs (beyond it). Huber will panic if δ is not positive.
func Huber(δ float64) *huber {
	if !(δ > 0) {
		panic("Huber δ must be positive")
	}

	return &huber{δ}
}

func (h *huber) TypeString() string {
	return "huber"
}

func (h *huber) Error(errs []float64) float64 {
	var sum float64
	for _, e := range errs {
		d := math.Abs(e)
		if d <= h.δ {
			sum += 0.5 * d * d
		} else {
			sum += h.δ*d - 0.5*h.δ*h.δ
		}
	}

	return sum
}
