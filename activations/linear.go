package activations

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

type linear struct {
	slope float64
}

// Linear returns the function slope * x. Linear will panic if the slope is NaN or infinite.
func Linear(slope float64) *linear {
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		panic(errors.Errorf("Linear slope must be finite (%v)", slope))
	}

	return &linear{slope}
}

// Identity is a proxy for Linear(1)
func Identity() *linear {
	return Linear(1)
}

func (l *linear) TypeString() string {
	return "linear"
}

func (l *linear) Slope() float64 {
	return l.slope
}

func (l *linear) Output(x float64) float64 {
	return l.slope * x
}

func (l *linear) Derivative(x float64) float64 {
	return l.slope
}

func (l *linear) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.slope)
}

func (l *linear) UnmarshalJSON(b []byte) error {
	var slope float64
	if err := json.Unmarshal(b, &slope); err != nil {
		return errors.Wrapf(err, "Can't decode linear slope")
	} else if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return errors.Errorf("Linear slope must be finite (%v)", slope)
	}

	l.slope = slope
	return nil
}
