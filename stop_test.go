package backprop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bp "github.com/sharnoff/backprop"
)

func TestStopConditions(t *testing.T) {
	cases := []struct {
		name string
		stop bp.StopCondition
		s    bp.Snapshot
		want bool
	}{
		{"before max", bp.MaxIterations(3), bp.Snapshot{Iteration: 2}, false},
		{"at max", bp.MaxIterations(3), bp.Snapshot{Iteration: 3}, true},
		{"above threshold", bp.IrreducibleError(0.1), bp.Snapshot{TotalError: 0.11}, false},
		{"at threshold", bp.IrreducibleError(0.1), bp.Snapshot{TotalError: 0.1}, true},
		{"unchecked", bp.PerformanceReached(0.9), bp.Snapshot{Performance: 1}, false},
		{"below target", bp.PerformanceReached(0.9), bp.Snapshot{Checked: true, Performance: 0.8}, false},
		{"at target", bp.PerformanceReached(0.9), bp.Snapshot{Checked: true, Performance: 0.9}, true},
	}

	for _, c := range cases {
		stop, msg := c.stop.Stop(c.s)
		assert.Equal(t, c.want, stop, c.name)
		if stop {
			assert.NotEmpty(t, msg, c.name)
		} else {
			assert.Empty(t, msg, c.name)
		}
	}
}

func TestCorrect(t *testing.T) {
	assert.True(t, bp.CorrectRound([]float64{0.2, 0.8}, []float64{0, 1}))
	assert.False(t, bp.CorrectRound([]float64{0.2, 0.4}, []float64{0, 1}))

	assert.True(t, bp.CorrectHighest([]float64{0.1, 0.3, 0.2}, []float64{0, 1, 0}))
	assert.False(t, bp.CorrectHighest([]float64{0.4, 0.3, 0.2}, []float64{0, 1, 0}))
	assert.True(t, bp.CorrectHighest(nil, nil))
}
