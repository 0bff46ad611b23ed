// Package activations provides the standard activation functions for neurons in a
// backprop.Network. Importing this package registers every type, so that saved Networks using them
// can be loaded.
package activations

import (
	bp "github.com/sharnoff/backprop"
)

func init() {
	// parameterised types are given placeholder values. The real ones are decoded when loaded.
	list := map[string]func() bp.ActivationFunction{
		Sigmoid().TypeString():   func() bp.ActivationFunction { return Sigmoid() },
		Tanh().TypeString():      func() bp.ActivationFunction { return Tanh() },
		Linear(1).TypeString():   func() bp.ActivationFunction { return Linear(1) },
		Gaussian(1).TypeString(): func() bp.ActivationFunction { return Gaussian(1) },
	}

	for s, f := range list {
		if err := bp.RegisterActivation(s, f); err != nil {
			panic(err.Error())
		}
	}
}
