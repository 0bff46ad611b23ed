// Package normalize scales pattern vectors into a fixed range before they are given to a Network,
// and divides ranges into equal segments for encoding continuous values.
package normalize

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Scaler maps each component of a vector linearly from the range observed by Fit into a target
// range. Components that were constant in the fitted data are mapped to the middle of the target.
type Scaler struct {
	min, max []float64

	lower, upper float64
}

// Fit returns a Scaler for vectors like those given, targeting the range [0, 1]. All vectors must
// have the same, non-zero length.
func Fit(vectors [][]float64) (*Scaler, error) {
	if len(vectors) == 0 {
		return nil, errors.Errorf("Can't fit scaler, no vectors given")
	}

	size := len(vectors[0])
	if size == 0 {
		return nil, errors.Errorf("Can't fit scaler, vectors have length 0")
	}

	s := &Scaler{
		min:   make([]float64, size),
		max:   make([]float64, size),
		lower: 0,
		upper: 1,
	}

	copy(s.min, vectors[0])
	copy(s.max, vectors[0])

	for i, v := range vectors[1:] {
		if len(v) != size {
			return nil, errors.Errorf("Can't fit scaler, vector %d has length %d, expected %d", i+1, len(v), size)
		}

		for c := range v {
			s.min[c] = math.Min(s.min[c], v[c])
			s.max[c] = math.Max(s.max[c], v[c])
		}
	}

	return s, nil
}

// Range sets the target range of the Scaler, returning it. Range will panic if lower >= upper.
func (s *Scaler) Range(lower, upper float64) *Scaler {
	if !(lower < upper) {
		panic(errors.Errorf("Target range is empty ([%v, %v])", lower, upper))
	}

	s.lower, s.upper = lower, upper
	return s
}

// Size returns the length of the vectors that the Scaler accepts
func (s *Scaler) Size() int {
	return len(s.min)
}

// Scale returns a scaled copy of v. Values outside the fitted range are not clipped.
func (s *Scaler) Scale(v []float64) ([]float64, error) {
	if len(v) != len(s.min) {
		return nil, errors.Errorf("Can't scale vector of length %d, expected %d", len(v), len(s.min))
	}

	out := make([]float64, len(v))
	for c := range v {
		width := s.max[c] - s.min[c]
		if width == 0 {
			out[c] = (s.lower + s.upper) / 2
			continue
		}

		out[c] = s.lower + (v[c]-s.min[c])/width*(s.upper-s.lower)
	}

	return out, nil
}

// Unscale is the inverse of Scale.
func (s *Scaler) Unscale(v []float64) ([]float64, error) {
	if len(v) != len(s.min) {
		return nil, errors.Errorf("Can't unscale vector of length %d, expected %d", len(v), len(s.min))
	}

	out := make([]float64, len(v))
	for c := range v {
		width := s.max[c] - s.min[c]
		out[c] = s.min[c] + (v[c]-s.lower)/(s.upper-s.lower)*width
	}

	return out, nil
}

// Segments returns the n+1 boundaries that divide [lower, upper] into n equal segments. It returns
// an error if n <= 1, or if the range is empty.
func Segments(lower, upper float64, n int) ([]float64, error) {
	if n <= 1 {
		return nil, errors.Errorf("Can't make segment array, number of segments must be > 1 (%d)", n)
	} else if !(lower < upper) {
		return nil, errors.Errorf("Can't make segment array, range is empty ([%v, %v])", lower, upper)
	}

	bounds := make([]float64, n+1)
	floats.Span(bounds, lower, upper)
	return bounds, nil
}

// Segment returns the index of the segment that x falls into, given boundaries from Segments.
// Values below the first boundary are in segment 0, values above the last are in the last segment.
// Segment will panic if given fewer than 2 boundaries.
func Segment(bounds []float64, x float64) int {
	if len(bounds) < 2 {
		panic(errors.Errorf("Can't find segment, need at least 2 boundaries (got %d)", len(bounds)))
	}

	last := len(bounds) - 2
	for i := 1; i <= last; i++ {
		if x < bounds[i] {
			return i - 1
		}
	}

	return last
}

// OneHot returns a vector of length n with a 1 at index i and 0 elsewhere. It is the usual
// expected-output encoding for classes, paired with backprop.CorrectHighest.
func OneHot(i, n int) []float64 {
	v := make([]float64, n)
	v[i] = 1
	return v
}
