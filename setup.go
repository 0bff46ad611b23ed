package backprop

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// New creates a Network with the given number of inputs. Layers must be added with AddLayer before
// the Network can be used. New returns an error if inputs < 1.
func New(inputs int) (*Network, error) {
	if inputs < 1 {
		return nil, errors.Errorf("Can't create network, number of inputs must be >= 1 (%d)", inputs)
	}

	net := new(Network)
	net.layers = []layer{{0, inputs}}
	net.neurons = make([]Neuron, inputs)
	for i := range net.neurons {
		net.neurons[i].id = i
	}

	return net, nil
}

// AddLayer appends a fully connected layer of neurons with the given activation function to the
// end of the Network. Every neuron in the previous layer feeds into every neuron of the new one,
// summed by WeightedSum. All of the new weights and biases are zero; see InitializeWeights and
// InitializeBiases.
//
// If AddLayer returns an error, the Network will not have been changed.
func (net *Network) AddLayer(size int, af ActivationFunction) error {
	if size < 1 {
		return errors.Errorf("Can't add layer, size must be >= 1 (%d)", size)
	} else if af == nil {
		return NilArgError{"ActivationFunction"}
	}

	prev := net.layers[len(net.layers)-1]
	l := layer{len(net.neurons), size}

	for v := 0; v < size; v++ {
		n := Neuron{
			id:    l.first + v,
			layer: len(net.layers),
			af:    af,
			inf:   WeightedSum(),
			in:    make([]int, prev.size),
		}

		for i := 0; i < prev.size; i++ {
			s := Synapse{from: prev.first + i, to: n.id}
			id := len(net.synapses)

			net.synapses = append(net.synapses, s)
			n.in[i] = id
			net.neurons[s.from].out = append(net.neurons[s.from].out, id)
		}

		net.neurons = append(net.neurons, n)
	}

	net.layers = append(net.layers, l)
	return nil
}

// InitializeWeights sets every weight in the Network to a value given by the RNG. If g is nil,
// weights are drawn from the standard normal distribution of the global source in math/rand, so
// repeated calls will not give the same weights. Reproducible weights require a seeded RNG, such
// as those provided by the subpackage "initializers".
func (net *Network) InitializeWeights(g RNG) {
	gen := rand.NormFloat64
	if g != nil {
		gen = g.Gen
	}

	for i := range net.synapses {
		net.synapses[i].weight = gen()
	}
}

// InitializeLayerWeights is the same as InitializeWeights, but only for the synapses feeding into
// the given layer. This allows RNGs that are scaled by layer size, such as initializers.Xavier.
func (net *Network) InitializeLayerWeights(l int, g RNG) error {
	if l < 1 || l >= len(net.layers) {
		return errors.Errorf("Can't initialize weights, layer %d is out of range [1, %d)", l, len(net.layers))
	}

	gen := rand.NormFloat64
	if g != nil {
		gen = g.Gen
	}

	ly := net.layers[l]
	for id := ly.first; id < ly.first+ly.size; id++ {
		for _, s := range net.neurons[id].in {
			net.synapses[s].weight = gen()
		}
	}

	return nil
}

// InitializeBiases sets the bias of every non-input neuron to the given value.
//
// InitializeBiases will panic with type Error if the value is NaN or infinite.
func (net *Network) InitializeBiases(value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(Error{"Initial bias is not finite"})
	}

	for i := net.layers[0].size; i < len(net.neurons); i++ {
		net.neurons[i].bias = value
	}
}

// SetActivation changes the activation function of a single neuron. Input neurons cannot be given
// activation functions.
func (net *Network) SetActivation(neuron int, af ActivationFunction) error {
	if af == nil {
		return NilArgError{"ActivationFunction"}
	} else if err := net.checkHidden(neuron); err != nil {
		return errors.Wrapf(err, "Can't set activation function")
	}

	net.neurons[neuron].af = af
	return nil
}

// SetInputFunction changes the input function of a single neuron. Input neurons cannot be given
// input functions.
func (net *Network) SetInputFunction(neuron int, f InputFunction) error {
	if f == nil {
		return NilArgError{"InputFunction"}
	} else if err := net.checkHidden(neuron); err != nil {
		return errors.Wrapf(err, "Can't set input function")
	}

	net.neurons[neuron].inf = f
	return nil
}

// SetWeight sets the weight of the synapse with the given id
func (net *Network) SetWeight(synapse int, w float64) error {
	if synapse < 0 || synapse >= len(net.synapses) {
		return errors.Errorf("Synapse id %d is out of range [0, %d)", synapse, len(net.synapses))
	}

	net.synapses[synapse].weight = w
	return nil
}

// SetBias sets the bias of the neuron with the given id
func (net *Network) SetBias(neuron int, b float64) error {
	if err := net.checkHidden(neuron); err != nil {
		return errors.Wrapf(err, "Can't set bias")
	}

	net.neurons[neuron].bias = b
	return nil
}

func (net *Network) checkHidden(neuron int) error {
	if neuron < 0 || neuron >= len(net.neurons) {
		return errors.Errorf("Neuron id %d is out of range [0, %d)", neuron, len(net.neurons))
	} else if neuron < net.layers[0].size {
		return errors.Errorf("Neuron %d is an input neuron", neuron)
	}

	return nil
}
