package backprop

// Network is a strictly layered feed-forward neural network. Neurons and Synapses are stored in
// flat slices, addressed by their ids, so that the learning process can keep its own per-synapse
// and per-neuron state in plain slices indexed the same way.
//
// A Network is created with New, and is given layers with AddLayer. The first layer (index 0) is
// always the input layer, which has no incoming synapses and no activation.
type Network struct {
	// all of the neurons in the network, stored such that their id is their index in this slice
	neurons []Neuron

	// all of the synapses in the network, stored such that their id is their index in this slice
	synapses []Synapse

	// the layers of the network, in order. layers[0] is the input layer
	layers []layer
}

// layers are contiguous ranges of neuron ids
type layer struct {
	first, size int
}

// Neuron is a single unit of the Network. Its fields are only accessible through methods; changes
// should be made through the host Network.
type Neuron struct {
	id    int
	layer int

	bias float64

	af  ActivationFunction
	inf InputFunction

	// the net input (including bias) and output from the latest forward pass
	input, output float64

	// ids of the synapses that feed into this neuron, ordered by source neuron
	in []int

	// ids of the synapses that this neuron feeds into, ordered by destination neuron
	out []int
}

// Synapse is a directed, weighted connection from a neuron in one layer to a neuron in the next.
type Synapse struct {
	from, to int
	weight   float64
}
