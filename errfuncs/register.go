// Package errfuncs provides ErrorFunctions for backprop.Manager. Importing this package registers
// every type by name, which is required for selecting them in a backprop.TrainConfig, and for the
// default ErrorFunction of a Manager.
package errfuncs

import (
	bp "github.com/sharnoff/backprop"
)

// DefaultHuberDelta is the δ given to Huber when it is created by name
const DefaultHuberDelta float64 = 1

func init() {
	list := map[string]func() bp.ErrorFunction{
		MSE().TypeString():                    func() bp.ErrorFunction { return MSE() },
		Abs().TypeString():                    func() bp.ErrorFunction { return Abs() },
		Huber(DefaultHuberDelta).TypeString(): func() bp.ErrorFunction { return Huber(DefaultHuberDelta) },
	}

	for s, f := range list {
		if err := bp.RegisterErrorFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}
