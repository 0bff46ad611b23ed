package backprop

// Accumulator keeps a running total of per-pattern errors, in order to give the mean across a set
// of patterns. The zero value is ready to use.
type Accumulator struct {
	total float64
	count int
}

// Add adds a single value to the total
func (a *Accumulator) Add(e float64) {
	a.total += e
	a.count++
}

// Mean returns the average of every value added since the last Reset. If nothing has been added,
// Mean returns 0.
func (a *Accumulator) Mean() float64 {
	if a.count == 0 {
		return 0
	}

	return a.total / float64(a.count)
}

// Count returns the number of values added since the last Reset
func (a *Accumulator) Count() int {
	return a.count
}

func (a *Accumulator) Reset() {
	a.total, a.count = 0, 0
}
