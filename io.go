package backprop

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// the name of the file within the save directory
const saveFile string = "network.json"

// NetworkSnapshot is a complete description of a Network: its topology, weights, biases, and the
// types of the functions of each neuron. It can be encoded directly as JSON.
type NetworkSnapshot struct {
	Inputs int             `json:"inputs"`
	Layers []LayerSnapshot `json:"layers"`
}

// LayerSnapshot is the description of a single non-input layer
type LayerSnapshot struct {
	Neurons []NeuronSnapshot `json:"neurons"`
}

// NeuronSnapshot is the description of a single non-input neuron. Weights are given in the order
// of the neurons in the previous layer.
type NeuronSnapshot struct {
	Activation       string          `json:"activation"`
	ActivationParams json.RawMessage `json:"activation_params,omitempty"`
	InputFunction    string          `json:"input_function"`

	Bias    float64   `json:"bias"`
	Weights []float64 `json:"weights"`
}

// Snapshot returns a description of the Network that can be used to recreate it with
// FromSnapshot. Activation functions with parameters are expected to implement json.Marshaler.
func (net *Network) Snapshot() (NetworkSnapshot, error) {
	snap := NetworkSnapshot{
		Inputs: net.InputSize(),
		Layers: make([]LayerSnapshot, len(net.layers)-1),
	}

	for l, ly := range net.layers[1:] {
		ns := make([]NeuronSnapshot, ly.size)
		for v := range ns {
			n := &net.neurons[ly.first+v]

			ns[v] = NeuronSnapshot{
				Activation:    n.af.TypeString(),
				InputFunction: n.inf.TypeString(),
				Bias:          n.bias,
				Weights:       make([]float64, len(n.in)),
			}

			if m, ok := n.af.(json.Marshaler); ok {
				params, err := m.MarshalJSON()
				if err != nil {
					return NetworkSnapshot{}, errors.Wrapf(err, "Can't snapshot network, failed to encode activation of neuron %d", n.id)
				}
				ns[v].ActivationParams = params
			}

			for i, s := range n.in {
				ns[v].Weights[i] = net.synapses[s].weight
			}
		}

		snap.Layers[l] = LayerSnapshot{ns}
	}

	return snap, nil
}

// FromSnapshot recreates a Network from its description. The topology is rebuilt first, then the
// functions of each neuron are recreated from their registered type strings, and finally the
// weights and biases are applied.
func FromSnapshot(snap NetworkSnapshot) (*Network, error) {
	net, err := New(snap.Inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network")
	} else if len(snap.Layers) == 0 {
		return nil, errors.Wrapf(ErrNoLayers, "Can't load network")
	}

	// topology
	for l, ly := range snap.Layers {
		if len(ly.Neurons) == 0 {
			return nil, errors.Errorf("Can't load network, layer %d has no neurons", l+1)
		}

		af, err := loadActivation(ly.Neurons[0])
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load network, layer %d", l+1)
		}

		if err = net.AddLayer(len(ly.Neurons), af); err != nil {
			return nil, errors.Wrapf(err, "Can't load network, failed to add layer %d", l+1)
		}
	}

	// functions, weights, and biases
	for l, ly := range snap.Layers {
		prevSize := net.layers[l].size
		first := net.layers[l+1].first

		for v, ns := range ly.Neurons {
			n := &net.neurons[first+v]

			if len(ns.Weights) != prevSize {
				return nil, SizeMismatchError{prevSize, len(ns.Weights), "weights of neuron " + n.String()}
			}

			if v != 0 {
				if n.af, err = loadActivation(ns); err != nil {
					return nil, errors.Wrapf(err, "Can't load network, neuron %d", n.id)
				}
			}

			if ns.InputFunction != "" {
				if n.inf, err = NewInputFunction(ns.InputFunction); err != nil {
					return nil, errors.Wrapf(err, "Can't load network, neuron %d", n.id)
				}
			}

			n.bias = ns.Bias
			for i, s := range n.in {
				net.synapses[s].weight = ns.Weights[i]
			}
		}
	}

	return net, nil
}

func loadActivation(ns NeuronSnapshot) (ActivationFunction, error) {
	af, err := NewActivation(ns.Activation)
	if err != nil {
		return nil, err
	}

	if len(ns.ActivationParams) != 0 {
		u, ok := af.(json.Unmarshaler)
		if !ok {
			return nil, errors.Errorf("Activation function %q has parameters but can't decode them", ns.Activation)
		}

		if err = u.UnmarshalJSON(ns.ActivationParams); err != nil {
			return nil, errors.Wrapf(err, "Failed to decode parameters of activation function %q", ns.Activation)
		}
	}

	return af, nil
}

// Encode writes the Snapshot of the Network to w as JSON
func (net *Network) Encode(w io.Writer) error {
	snap, err := net.Snapshot()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err = enc.Encode(snap); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON")
	}

	return nil
}

// Decode reads a Network previously written with Encode
func Decode(r io.Reader) (*Network, error) {
	var snap NetworkSnapshot

	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode JSON")
	}

	return FromSnapshot(snap)
}

// Save writes the network to the specified path, creating a directory to contain it (with
// permissions 0700).
//
// If 'overwrite' is false and the directory already exists, Save will return error.
func (net *Network) Save(dirPath string, overwrite bool) error {
	var err error

	// check if the folder already exists
	if _, err = os.Stat(dirPath); err == nil {
		if !overwrite {
			return errors.Errorf("Can't save network, folder %q already exists, and overwrite is not enabled", dirPath)
		}

		if err = os.RemoveAll(dirPath); err != nil {
			return errors.Wrapf(err, "Can't save network, couldn't remove pre-existing folder to overwrite")
		}
	}

	if err = os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory to save network")
	}

	f, err := os.Create(filepath.Join(dirPath, saveFile))
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %q in %q", saveFile, dirPath)
	}

	if err = net.Encode(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save network")
	}

	return f.Close()
}

// Load loads the network from a directory previously written to by Save. The types of every
// function used by the network must have been registered, usually by importing the subpackages
// "activations" and friends.
func Load(dirPath string) (*Network, error) {
	f, err := os.Open(filepath.Join(dirPath, saveFile))
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network, couldn't open file %q in %q", saveFile, dirPath)
	}

	defer f.Close()

	net, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", dirPath)
	}

	return net, nil
}
