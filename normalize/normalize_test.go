package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaler(t *testing.T) {
	s, err := Fit([][]float64{
		{0, 10, 5},
		{4, 20, 5},
		{2, 15, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Size())

	out, err := s.Scale([]float64{1, 20, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 1, 0.5}, out, 1e-15)

	s.Range(-1, 1)
	out, err = s.Scale([]float64{4, 10, 7})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1, 0}, out, 1e-15)

	back, err := s.Unscale([]float64{1, -1, 0.3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 10, 5}, back, 1e-12)

	_, err = s.Scale([]float64{1})
	assert.Error(t, err)
}

func TestFitErrors(t *testing.T) {
	_, err := Fit(nil)
	assert.Error(t, err)

	_, err = Fit([][]float64{{1, 2}, {1}})
	assert.Error(t, err)
}

func TestSegments(t *testing.T) {
	bounds, err := Segments(0, 1, 4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, bounds, 1e-15)

	assert.Equal(t, 0, Segment(bounds, -3))
	assert.Equal(t, 0, Segment(bounds, 0.1))
	assert.Equal(t, 2, Segment(bounds, 0.5))
	assert.Equal(t, 3, Segment(bounds, 0.99))
	assert.Equal(t, 3, Segment(bounds, 7))

	for _, n := range []int{1, 0, -2} {
		_, err = Segments(0, 1, n)
		assert.Error(t, err, "segments = %d", n)
	}

	_, err = Segments(1, 1, 3)
	assert.Error(t, err)
}

func TestSegmentBounds(t *testing.T) {
	assert.Equal(t, 0, Segment([]float64{0, 1}, 0.5))
	assert.Equal(t, 0, Segment([]float64{0, 1}, 2))

	assert.Panics(t, func() { Segment(nil, 0.5) })
	assert.Panics(t, func() { Segment([]float64{0}, 0.5) })
}

func TestOneHot(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 1, 0}, OneHot(2, 4))
}
