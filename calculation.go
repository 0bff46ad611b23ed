package backprop

// Forward runs the given inputs through the Network, returning a copy of the outputs. The net
// input and output of every neuron is cached, to be used by the learning process.
//
// There are two error conditions:
//	(0) If the Network has no layers beyond its inputs: ErrNoLayers,
//	(1) If the number of inputs doesn't match InputSize(): type SizeMismatchError.
func (net *Network) Forward(inputs []float64) ([]float64, error) {
	if err := net.evaluate(inputs); err != nil {
		return nil, err
	}

	return net.Outputs(), nil
}

func (net *Network) evaluate(inputs []float64) error {
	if len(net.layers) < 2 {
		return ErrNoLayers
	} else if len(inputs) != net.layers[0].size {
		return SizeMismatchError{net.layers[0].size, len(inputs), "inputs"}
	}

	// input neurons take their values directly
	for i, v := range inputs {
		net.neurons[i].input = v
		net.neurons[i].output = v
	}

	for _, l := range net.layers[1:] {
		for id := l.first; id < l.first+l.size; id++ {
			n := &net.neurons[id]

			weight := func(i int) float64 {
				return net.synapses[n.in[i]].weight
			}

			source := func(i int) float64 {
				return net.neurons[net.synapses[n.in[i]].from].output
			}

			n.input = n.inf.Input(len(n.in), weight, source) + n.bias
			n.output = n.af.Output(n.input)
		}
	}

	return nil
}

// Outputs returns a copy of the output values of the last layer from the most recent call to
// Forward. If Forward has not been called, the values will all be zero.
func (net *Network) Outputs() []float64 {
	l := net.layers[len(net.layers)-1]
	outs := make([]float64, l.size)
	for i := range outs {
		outs[i] = net.neurons[l.first+i].output
	}

	return outs
}

// errorVector fills errs with (expected - actual) for each output. Assumes that the lengths are
// correct.
func (net *Network) errorVector(expected, errs []float64) {
	l := net.layers[len(net.layers)-1]
	for i := range errs {
		errs[i] = expected[i] - net.neurons[l.first+i].output
	}
}

// checkPattern returns an error if the pattern does not fit the Network
func (net *Network) checkPattern(p Pattern) error {
	if len(net.layers) < 2 {
		return ErrNoLayers
	} else if len(p.input) != net.InputSize() {
		return SizeMismatchError{net.InputSize(), len(p.input), "pattern inputs"}
	} else if len(p.expected) != net.OutputSize() {
		return SizeMismatchError{net.OutputSize(), len(p.expected), "pattern outputs"}
	}

	return nil
}
