package backprop

import (
	"fmt"
)

type maxIterations int

// MaxIterations returns a StopCondition that is satisfied once n iterations have been completed.
func MaxIterations(n int) StopCondition {
	return maxIterations(n)
}

func (m maxIterations) Stop(s Snapshot) (bool, string) {
	if s.Iteration >= int(m) {
		return true, fmt.Sprintf("Reached maximum number of iterations (%d)", int(m))
	}

	return false, ""
}

type irreducibleError float64

// IrreducibleError returns a StopCondition that is satisfied after the first iteration with a
// total error less than or equal to the threshold.
func IrreducibleError(threshold float64) StopCondition {
	return irreducibleError(threshold)
}

func (e irreducibleError) Stop(s Snapshot) (bool, string) {
	if s.TotalError <= float64(e) {
		return true, fmt.Sprintf("Total error %v is within threshold %v", s.TotalError, float64(e))
	}

	return false, ""
}

type performanceReached float64

// PerformanceReached returns a StopCondition that is satisfied once a performance check has given
// a fraction correct of at least the one provided. It is never satisfied if the Manager has no
// check data.
func PerformanceReached(fraction float64) StopCondition {
	return performanceReached(fraction)
}

func (p performanceReached) Stop(s Snapshot) (bool, string) {
	if s.Checked && s.Performance >= float64(p) {
		return true, fmt.Sprintf("Performance %v reached target %v", s.Performance, float64(p))
	}

	return false, ""
}
