package backprop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// InputSize returns the number of inputs the Network expects
func (net *Network) InputSize() int {
	return net.layers[0].size
}

// OutputSize returns the number of values in the last layer. If no layers have been added, this
// will be the same as InputSize.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].size
}

// NumLayers returns the number of layers in the Network, including the input layer.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// NumNeurons returns the total number of neurons in the Network, including inputs. Neuron ids are
// in the range [0, NumNeurons()).
func (net *Network) NumNeurons() int {
	return len(net.neurons)
}

// NumSynapses returns the total number of synapses in the Network. Synapse ids are in the range
// [0, NumSynapses()).
func (net *Network) NumSynapses() int {
	return len(net.synapses)
}

// LayerSize returns the number of neurons in the given layer. LayerSize will panic if the layer is
// out of range.
func (net *Network) LayerSize(l int) int {
	return net.layers[l].size
}

// LayerNeurons returns the ids of the neurons in the given layer, in order.
func (net *Network) LayerNeurons(l int) []int {
	ly := net.layers[l]
	ids := make([]int, ly.size)
	for i := range ids {
		ids[i] = ly.first + i
	}

	return ids
}

// Neuron returns the neuron with the given id. The returned pointer should not be held on to
// across changes to the Network.
func (net *Network) Neuron(id int) *Neuron {
	return &net.neurons[id]
}

// Synapse returns a copy of the synapse with the given id.
func (net *Network) Synapse(id int) Synapse {
	return net.synapses[id]
}

// Weights returns a copy of the weights into the given layer as a matrix, with one row per neuron
// in the layer and one column per neuron in the previous layer. Weights will panic if given the
// input layer.
func (net *Network) Weights(l int) *mat.Dense {
	if l == 0 {
		panic(Error{"Input layer has no weights"})
	}

	ly, prev := net.layers[l], net.layers[l-1]
	m := mat.NewDense(ly.size, prev.size, nil)
	for v := 0; v < ly.size; v++ {
		n := &net.neurons[ly.first+v]
		for i, s := range n.in {
			m.Set(v, i, net.synapses[s].weight)
		}
	}

	return m
}

// Biases returns a copy of the biases of the neurons in the given layer
func (net *Network) Biases(l int) []float64 {
	ly := net.layers[l]
	bs := make([]float64, ly.size)
	for i := range bs {
		bs[i] = net.neurons[ly.first+i].bias
	}

	return bs
}

// String returns a short description of the shape of the Network, e.g. "<network 2-3-1>"
func (net *Network) String() string {
	if net == nil {
		return "<nil>"
	}

	str := "<network "
	for i, l := range net.layers {
		if i != 0 {
			str += "-"
		}
		str += fmt.Sprint(l.size)
	}

	return str + ">"
}

// ID returns the id of the neuron, unique within its Network
func (n *Neuron) ID() int {
	return n.id
}

// Layer returns the index of the layer the neuron belongs to
func (n *Neuron) Layer() int {
	return n.layer
}

// IsInput returns whether or not the neuron is in the input layer
func (n *Neuron) IsInput() bool {
	return n.layer == 0
}

func (n *Neuron) Bias() float64 {
	return n.bias
}

// Activation returns the activation function of the neuron. This is nil for input neurons.
func (n *Neuron) Activation() ActivationFunction {
	return n.af
}

// InputFunction returns the input function of the neuron. This is nil for input neurons.
func (n *Neuron) InputFunction() InputFunction {
	return n.inf
}

// Input returns the net input (including bias) of the neuron from the last forward pass
func (n *Neuron) Input() float64 {
	return n.input
}

// Output returns the output of the neuron from the last forward pass
func (n *Neuron) Output() float64 {
	return n.output
}

// Incoming returns a copy of the ids of the synapses feeding into the neuron
func (n *Neuron) Incoming() []int {
	in := make([]int, len(n.in))
	copy(in, n.in)
	return in
}

// Outgoing returns a copy of the ids of the synapses that the neuron feeds into
func (n *Neuron) Outgoing() []int {
	out := make([]int, len(n.out))
	copy(out, n.out)
	return out
}

// From returns the id of the source neuron
func (s Synapse) From() int {
	return s.from
}

// To returns the id of the destination neuron
func (s Synapse) To() int {
	return s.to
}

func (s Synapse) Weight() float64 {
	return s.weight
}

func (n *Neuron) String() string {
	return fmt.Sprintf("<neuron %d, layer %d>", n.id, n.layer)
}
