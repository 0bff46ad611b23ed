package activations

import (
	"math"
)

type tanh int8

// Tanh returns the hyperbolic tangent, with range (-1, 1).
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Output(x float64) float64 {
	return math.Tanh(x)
}

// the derivative of tanh(x) is 1 - tanh(x)^2
func (t tanh) Derivative(x float64) float64 {
	y := math.Tanh(x)
	return 1 - y*y
}
