package activations

import (
	"math"
)

type sigmoid int8

// Sigmoid returns the logistic function, 1 / (1 + e^-x), with range (0, 1).
func Sigmoid() sigmoid {
	return sigmoid(0)
}

// Logistic is a proxy for Sigmoid
func Logistic() sigmoid {
	return Sigmoid()
}

func (s sigmoid) TypeString() string {
	return "sigmoid"
}

func (s sigmoid) Output(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// the derivative of the sigmoid is y * (1 - y)
func (s sigmoid) Derivative(x float64) float64 {
	y := s.Output(x)
	return y * (1 - y)
}
