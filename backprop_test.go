package backprop_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bp "github.com/sharnoff/backprop"
	"github.com/sharnoff/backprop/activations"
)

// a single linear neuron, y = 0.5x
func linearNet(t *testing.T) *bp.Network {
	net, err := bp.New(1)
	require.NoError(t, err)
	require.NoError(t, net.AddLayer(1, activations.Linear(1)))
	require.NoError(t, net.SetWeight(0, 0.5))
	return net
}

func TestNewBackprop(t *testing.T) {
	invalid := []struct{ lr, m float64 }{
		{0, 0},
		{-0.1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{0.1, 1},
		{0.1, -0.01},
		{0.1, math.NaN()},
	}

	for _, c := range invalid {
		_, err := bp.NewBackprop(c.lr, c.m)
		assert.Error(t, err, "lr = %v, momentum = %v", c.lr, c.m)
	}

	b, err := bp.NewBackprop(0.25, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 0.25, b.LearningRate())
	assert.Equal(t, 0.9, b.Momentum())
}

func TestLearnWithMomentum(t *testing.T) {
	net := linearNet(t)
	b, err := bp.NewBackprop(0.1, 0.5)
	require.NoError(t, err)

	p := bp.NewPattern([]float64{2}, []float64{3})

	// out = 1, err = 2, Δw = 0.1 * 2 * 2, Δb = 0.1 * 2
	errs, err := b.Learn(net, p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2}, errs, 1e-12)
	assert.InDelta(t, 0.9, net.Synapse(0).Weight(), 1e-12)
	assert.InDelta(t, 0.2, net.Neuron(1).Bias(), 1e-12)

	// out = 2, err = 1, Δw = 0.1 * 1 * 2 + 0.5 * 0.4, Δb = 0.1 * 1 + 0.5 * 0.2
	errs, err = b.Learn(net, p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1}, errs, 1e-12)
	assert.InDelta(t, 1.3, net.Synapse(0).Weight(), 1e-12)
	assert.InDelta(t, 0.4, net.Neuron(1).Bias(), 1e-12)
}

func TestResetDropsMomentum(t *testing.T) {
	net := linearNet(t)
	b, err := bp.NewBackprop(0.1, 0.5)
	require.NoError(t, err)

	p := bp.NewPattern([]float64{2}, []float64{3})
	_, err = b.Learn(net, p)
	require.NoError(t, err)

	b.Reset()

	_, err = b.Learn(net, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, net.Synapse(0).Weight(), 1e-12)
	assert.InDelta(t, 0.3, net.Neuron(1).Bias(), 1e-12)
}

func TestLearnHiddenLayer(t *testing.T) {
	net, err := bp.New(1)
	require.NoError(t, err)
	require.NoError(t, net.AddLayer(1, activations.Identity()))
	require.NoError(t, net.AddLayer(1, activations.Identity()))
	require.NoError(t, net.SetWeight(0, 0.5))
	require.NoError(t, net.SetWeight(1, 2))

	b, err := bp.NewBackprop(0.1, 0)
	require.NoError(t, err)

	// hidden = 0.5, out = 1, err = 1
	// output delta = 1, hidden delta = 1 * 2 (using the weight before it changes)
	errs, err := b.Learn(net, bp.NewPattern([]float64{1}, []float64{2}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1}, errs, 1e-12)

	assert.InDelta(t, 0.7, net.Synapse(0).Weight(), 1e-12)
	assert.InDelta(t, 2.05, net.Synapse(1).Weight(), 1e-12)
	assert.InDelta(t, 0.2, net.Neuron(1).Bias(), 1e-12)
	assert.InDelta(t, 0.1, net.Neuron(2).Bias(), 1e-12)
}

func TestUpdateFlags(t *testing.T) {
	p := bp.NewPattern([]float64{2}, []float64{3})

	net := linearNet(t)
	b, err := bp.NewBackprop(0.1, 0.5)
	require.NoError(t, err)
	b.UpdateWeights(false)

	for i := 0; i < 3; i++ {
		_, err = b.Learn(net, p)
		require.NoError(t, err)
	}
	assert.Equal(t, 0.5, net.Synapse(0).Weight())
	assert.NotEqual(t, 0.0, net.Neuron(1).Bias())

	net = linearNet(t)
	b, err = bp.NewBackprop(0.1, 0.5)
	require.NoError(t, err)
	b.UpdateBiases(false)

	for i := 0; i < 3; i++ {
		_, err = b.Learn(net, p)
		require.NoError(t, err)
	}
	assert.Equal(t, 0.0, net.Neuron(1).Bias())
	assert.NotEqual(t, 0.5, net.Synapse(0).Weight())
}

func TestLearnMismatch(t *testing.T) {
	net := linearNet(t)
	b, err := bp.NewBackprop(0.1, 0)
	require.NoError(t, err)

	_, err = b.Learn(net, bp.NewPattern([]float64{1, 2}, []float64{1}))
	assert.Equal(t, bp.SizeMismatchError{Expected: 1, Got: 2, What: "pattern inputs"}, errors.Cause(err))

	_, err = b.Learn(net, bp.NewPattern([]float64{1}, nil))
	assert.Equal(t, bp.SizeMismatchError{Expected: 1, Got: 0, What: "pattern outputs"}, errors.Cause(err))

	assert.Equal(t, 0.5, net.Synapse(0).Weight(), "a failed pattern must not change the network")
}

func TestLearnReducesError(t *testing.T) {
	net := smallNet(t, 8)
	b, err := bp.NewBackprop(0.5, 0)
	require.NoError(t, err)

	p := bp.NewPattern([]float64{1, 0, -1}, []float64{0.9, 0.1})

	first, err := b.Learn(net, p)
	require.NoError(t, err)

	var last []float64
	for i := 0; i < 50; i++ {
		last, err = b.Learn(net, p)
		require.NoError(t, err)
	}

	sq := func(v []float64) float64 { return v[0]*v[0] + v[1]*v[1] }
	assert.Less(t, sq(last), sq(first))
}
