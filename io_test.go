package backprop_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	bp "github.com/sharnoff/backprop"
	"github.com/sharnoff/backprop/activations"
	"github.com/sharnoff/backprop/initializers"
)

// a network using every kind of activation function, including parameterised ones
func mixedNet(t *testing.T) *bp.Network {
	net, err := bp.New(3)
	require.NoError(t, err)
	require.NoError(t, net.AddLayer(4, activations.Sigmoid()))
	require.NoError(t, net.AddLayer(2, activations.Linear(2)))

	require.NoError(t, net.SetActivation(4, activations.Gaussian(0.7)))
	require.NoError(t, net.SetActivation(5, activations.Tanh()))

	net.InitializeWeights(initializers.Normal().Seed(3))
	net.InitializeBiases(0.1)
	require.NoError(t, net.SetBias(7, -0.3))
	return net
}

var probes = [][]float64{
	{0, 0, 0},
	{1, -1, 0.5},
	{0.123456789, 7, -3.25},
}

func assertSameNetwork(t *testing.T, a, b *bp.Network) {
	require.Equal(t, a.String(), b.String())

	for l := 1; l < a.NumLayers(); l++ {
		assert.True(t, mat.Equal(a.Weights(l), b.Weights(l)), "weights of layer %d", l)
		assert.Equal(t, a.Biases(l), b.Biases(l), "biases of layer %d", l)
	}

	for id := a.InputSize(); id < a.NumNeurons(); id++ {
		assert.Equal(t, a.Neuron(id).Activation().TypeString(), b.Neuron(id).Activation().TypeString())
	}

	for _, in := range probes {
		x, err := a.Forward(in)
		require.NoError(t, err)
		y, err := b.Forward(in)
		require.NoError(t, err)
		assert.Equal(t, x, y, "outputs for %v", in)
	}
}

func TestSaveLoad(t *testing.T) {
	net := mixedNet(t)
	dir := filepath.Join(t.TempDir(), "net")

	require.NoError(t, net.Save(dir, false))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	assert.Error(t, net.Save(dir, false), "must not overwrite without permission")
	require.NoError(t, net.Save(dir, true))

	loaded, err := bp.Load(dir)
	require.NoError(t, err)
	assertSameNetwork(t, net, loaded)

	g, ok := loaded.Neuron(4).Activation().(interface{ Sigma() float64 })
	require.True(t, ok)
	assert.Equal(t, 0.7, g.Sigma())

	l, ok := loaded.Neuron(7).Activation().(interface{ Slope() float64 })
	require.True(t, ok)
	assert.Equal(t, 2.0, l.Slope())
}

func TestLoadMissing(t *testing.T) {
	_, err := bp.Load(filepath.Join(t.TempDir(), "nothing"))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	net := mixedNet(t)

	var buf bytes.Buffer
	require.NoError(t, net.Encode(&buf))

	decoded, err := bp.Decode(&buf)
	require.NoError(t, err)
	assertSameNetwork(t, net, decoded)
}

func TestFromSnapshotErrors(t *testing.T) {
	snap, err := mixedNet(t).Snapshot()
	require.NoError(t, err)

	bad := snap
	bad.Layers = nil
	_, err = bp.FromSnapshot(bad)
	assert.Equal(t, bp.ErrNoLayers, errors.Cause(err))

	bad = copySnapshot(snap)
	bad.Layers[1].Neurons[0].Activation = "no such function"
	_, err = bp.FromSnapshot(bad)
	assert.Equal(t, bp.ErrRegisterUnknown, errors.Cause(err))

	bad = copySnapshot(snap)
	bad.Layers[0].Neurons[2].Weights = []float64{1}
	_, err = bp.FromSnapshot(bad)
	assert.IsType(t, bp.SizeMismatchError{}, errors.Cause(err))

	bad = copySnapshot(snap)
	bad.Layers[0].Neurons[1].ActivationParams = []byte("0")
	_, err = bp.FromSnapshot(bad)
	assert.Error(t, err, "gaussian with zero sigma")

	_, err = bp.FromSnapshot(snap)
	assert.NoError(t, err)
}

func copySnapshot(snap bp.NetworkSnapshot) bp.NetworkSnapshot {
	c := bp.NetworkSnapshot{Inputs: snap.Inputs}
	for _, l := range snap.Layers {
		ns := make([]bp.NeuronSnapshot, len(l.Neurons))
		copy(ns, l.Neurons)
		c.Layers = append(c.Layers, bp.LayerSnapshot{Neurons: ns})
	}

	return c
}
