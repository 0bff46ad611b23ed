package backprop_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bp "github.com/sharnoff/backprop"
	"github.com/sharnoff/backprop/activations"
	"github.com/sharnoff/backprop/errfuncs"
)

func TestRegisterActivation(t *testing.T) {
	err := bp.RegisterActivation("sigmoid", func() bp.ActivationFunction { return activations.Sigmoid() })
	assert.Equal(t, bp.ErrRegisterDuplicate, errors.Cause(err))

	err = bp.RegisterActivation("nil-returning", func() bp.ActivationFunction { return nil })
	assert.Equal(t, bp.ErrRegisterNilReturn, err)

	err = bp.RegisterActivation("nil", nil)
	assert.IsType(t, bp.NilArgError{}, err)

	require.NoError(t, bp.RegisterActivation("register-test", func() bp.ActivationFunction { return activations.Tanh() }))
	af, err := bp.NewActivation("register-test")
	require.NoError(t, err)
	assert.Equal(t, 0.0, af.Output(0))

	_, err = bp.NewActivation("not registered")
	assert.Equal(t, bp.ErrRegisterUnknown, errors.Cause(err))
}

func TestRegisterErrorFunction(t *testing.T) {
	err := bp.RegisterErrorFunction("mse", func() bp.ErrorFunction { return errfuncs.MSE() })
	assert.Equal(t, bp.ErrRegisterDuplicate, errors.Cause(err))

	_, err = bp.NewErrorFunction("not registered")
	assert.Equal(t, bp.ErrRegisterUnknown, errors.Cause(err))
}

func TestInputFunctions(t *testing.T) {
	f, err := bp.NewInputFunction("weighted sum")
	require.NoError(t, err)

	ws := []float64{0.5, -1, 2}
	xs := []float64{4, 3, 0.25}
	sum := f.Input(3, func(i int) float64 { return ws[i] }, func(i int) float64 { return xs[i] })
	assert.Equal(t, 2-3+0.5, sum)

	err = bp.RegisterInputFunction("weighted sum", func() bp.InputFunction { return bp.WeightedSum() })
	assert.Equal(t, bp.ErrRegisterDuplicate, errors.Cause(err))

	_, err = bp.NewInputFunction("product")
	assert.Equal(t, bp.ErrRegisterUnknown, errors.Cause(err))
}
