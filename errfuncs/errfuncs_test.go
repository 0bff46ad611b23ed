package errfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bp "github.com/sharnoff/backprop"
)

func TestMSE(t *testing.T) {
	assert.Equal(t, 0.0, MSE().Error(nil))
	assert.Equal(t, 0.5, MSE().Error([]float64{1}))
	assert.InDelta(t, 0.5*(0.25+4+0.01), MSE().Error([]float64{0.5, -2, 0.1}), 1e-15)
}

func TestAbs(t *testing.T) {
	assert.InDelta(t, 2.6, Abs().Error([]float64{0.5, -2, 0.1}), 1e-15)
}

func TestHuber(t *testing.T) {
	h := Huber(1)

	// within δ, the same as MSE
	assert.InDelta(t, MSE().Error([]float64{0.5, -0.2}), h.Error([]float64{0.5, -0.2}), 1e-15)

	// beyond δ, linear
	assert.InDelta(t, 3-0.5, h.Error([]float64{-3}), 1e-15)

	assert.Panics(t, func() { Huber(0) })
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"mse", "abs", "huber"} {
		ef, err := bp.NewErrorFunction(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, ef.TypeString())
	}
}
