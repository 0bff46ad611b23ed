package activations

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

type gaussian struct {
	σ float64
}

// Gaussian returns the function e^(-x² / 2σ²), which peaks at 1 when x = 0. Gaussian will panic
// if sigma is zero, NaN, or infinite.
func Gaussian(sigma float64) *gaussian {
	if err := checkSigma(sigma); err != nil {
		panic(err)
	}

	return &gaussian{sigma}
}

func checkSigma(sigma float64) error {
	if sigma == 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return errors.Errorf("Gaussian sigma must be non-zero and finite (%v)", sigma)
	}

	return nil
}

func (g *gaussian) TypeString() string {
	return "gaussian"
}

func (g *gaussian) Sigma() float64 {
	return g.σ
}

func (g *gaussian) Output(x float64) float64 {
	return math.Exp(-(x * x) / (2 * g.σ * g.σ))
}

// the derivative is y * (-x / σ²)
func (g *gaussian) Derivative(x float64) float64 {
	return g.Output(x) * (-x / (g.σ * g.σ))
}

func (g *gaussian) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.σ)
}

func (g *gaussian) UnmarshalJSON(b []byte) error {
	var sigma float64
	if err := json.Unmarshal(b, &sigma); err != nil {
		return errors.Wrapf(err, "Can't decode gaussian sigma")
	} else if err = checkSigma(sigma); err != nil {
		return err
	}

	g.σ = sigma
	return nil
}
