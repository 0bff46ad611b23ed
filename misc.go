package backprop

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CorrectRound returns whether or not every output rounds to its target. Outputs are rounded to 0
// if < 0.5 and to 1 if > 0.5. Assumes that len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != math.Round(targets[i]) {
			return false
		}
	}

	return true
}

// CorrectHighest returns whether or not the largest value in each is at the same index, i.e.
// whether the predicted class matches the expected one. This is the default for Managers.
func CorrectHighest(outs, targets []float64) bool {
	if len(outs) == 0 {
		return len(targets) == 0
	}

	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}
