package backprop

import (
	"math"

	"github.com/pkg/errors"
)

// Backprop is the standard LearningProcess: per-pattern gradient descent by backpropagation, with
// momentum. The weights and biases of the Network are changed immediately after each pattern.
//
// The momentum term uses only the change made for the immediately preceding pattern. The learning
// rate and momentum do not change over the course of training.
type Backprop struct {
	learningRate float64
	momentum     float64

	updateWeights bool
	updateBiases  bool

	// deltas of each neuron for the current pattern, by neuron id
	deltas []float64

	// the changes made for the previous pattern, by synapse id and neuron id respectively
	prevWeightDeltas []float64
	prevBiasDeltas   []float64
}

// NewBackprop returns a Backprop with the given learning rate and momentum factor, which updates
// both weights and biases. The learning rate must be positive, and momentum must be in the range
// [0, 1).
func NewBackprop(learningRate, momentum float64) (*Backprop, error) {
	if !(learningRate > 0) || math.IsInf(learningRate, 0) {
		return nil, errors.Errorf("Learning rate must be positive and finite (%v)", learningRate)
	} else if !(momentum >= 0 && momentum < 1) {
		return nil, errors.Errorf("Momentum must be in the range [0, 1) (%v)", momentum)
	}

	b := &Backprop{
		learningRate:  learningRate,
		momentum:      momentum,
		updateWeights: true,
		updateBiases:  true,
	}

	return b, nil
}

// UpdateWeights sets whether or not weights will be changed, returning the Backprop
func (b *Backprop) UpdateWeights(on bool) *Backprop {
	b.updateWeights = on
	return b
}

// UpdateBiases sets whether or not biases will be changed, returning the Backprop
func (b *Backprop) UpdateBiases(on bool) *Backprop {
	b.updateBiases = on
	return b
}

func (b *Backprop) LearningRate() float64 {
	return b.learningRate
}

func (b *Backprop) Momentum() float64 {
	return b.momentum
}

// Reset clears the stored changes used for momentum.
func (b *Backprop) Reset() {
	b.deltas = nil
	b.prevWeightDeltas = nil
	b.prevBiasDeltas = nil
}

// bind makes sure that the stored slices have the shape of the Network. If they don't, momentum is
// lost.
func (b *Backprop) bind(net *Network) {
	if len(b.deltas) == len(net.neurons) && len(b.prevWeightDeltas) == len(net.synapses) {
		return
	}

	b.deltas = make([]float64, len(net.neurons))
	b.prevBiasDeltas = make([]float64, len(net.neurons))
	b.prevWeightDeltas = make([]float64, len(net.synapses))
}

// Learn is the implementation of LearningProcess for Backprop. The returned error vector is from
// the outputs of the Network before its weights were changed.
func (b *Backprop) Learn(net *Network, p Pattern) ([]float64, error) {
	if err := net.checkPattern(p); err != nil {
		return nil, errors.Wrapf(err, "Can't learn pattern")
	}

	b.bind(net)

	if err := net.evaluate(p.input); err != nil {
		return nil, errors.Wrapf(err, "Can't learn pattern, forward pass failed")
	}

	errs := make([]float64, net.OutputSize())
	net.errorVector(p.expected, errs)

	b.getDeltas(net, errs)
	b.adjust(net)

	return errs, nil
}

// getDeltas calculates the delta of every non-input neuron, from the output layer backwards. All
// deltas are calculated before any weights are changed.
func (b *Backprop) getDeltas(net *Network, errs []float64) {
	out := net.layers[len(net.layers)-1]
	for i := 0; i < out.size; i++ {
		n := &net.neurons[out.first+i]
		b.deltas[n.id] = n.af.Derivative(n.input) * errs[i]
	}

	for l := len(net.layers) - 2; l > 0; l-- {
		ly := net.layers[l]
		for id := ly.first; id < ly.first+ly.size; id++ {
			n := &net.neurons[id]

			var sum float64
			for _, s := range n.out {
				sum += b.deltas[net.synapses[s].to] * net.synapses[s].weight
			}

			b.deltas[id] = n.af.Derivative(n.input) * sum
		}
	}
}

func (b *Backprop) adjust(net *Network) {
	for id := net.layers[0].size; id < len(net.neurons); id++ {
		n := &net.neurons[id]
		d := b.deltas[id]

		for _, s := range n.in {
			syn := &net.synapses[s]

			change := b.learningRate*d*net.neurons[syn.from].output + b.momentum*b.prevWeightDeltas[s]
			if b.updateWeights {
				syn.weight += change
			}

			b.prevWeightDeltas[s] = change
		}

		if b.updateBiases {
			change := b.learningRate*d + b.momentum*b.prevBiasDeltas[id]
			n.bias += change
			b.prevBiasDeltas[id] = change
		}
	}
}
