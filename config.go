package backprop

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/sharnoff/backprop/initializers"
)

// TrainConfig is the set of values that configure a single training run. It can be read from a
// JSON file with LoadConfig.
type TrainConfig struct {
	LearningRate float64 `json:"learning_rate"`
	Momentum     float64 `json:"momentum"`

	UpdateWeights bool `json:"update_weights"`
	UpdateBiases  bool `json:"update_biases"`

	InitialBias float64 `json:"initial_bias"`

	// WeightSeed seeds the normal distribution that weights are drawn from. Zero means unseeded.
	WeightSeed int64 `json:"weight_seed"`

	// MaxIterations adds a MaxIterations stop condition if > 0
	MaxIterations int `json:"max_iterations"`

	// IrreducibleError adds an IrreducibleError stop condition if set. Zero is allowed, and stops
	// only once the total error is exactly zero.
	IrreducibleError *float64 `json:"irreducible_error,omitempty"`

	CheckEvery int `json:"check_every"`

	// ErrorFunction is the registered name of the ErrorFunction to use, e.g. "mse"
	ErrorFunction string `json:"error_function"`
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() TrainConfig {
	return TrainConfig{
		LearningRate:  0.5,
		Momentum:      0.3,
		UpdateWeights: true,
		UpdateBiases:  true,
		InitialBias:   0,
		MaxIterations: 1000,
		CheckEvery:    1,
		ErrorFunction: "mse",
	}
}

// LoadConfig reads a TrainConfig from the JSON file at path. Any values missing from the file are
// taken from DefaultConfig. The result is validated before it is returned.
func LoadConfig(path string) (TrainConfig, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, errors.Wrapf(err, "Failed to open config file %q", path)
	}

	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&c); err != nil {
		return c, errors.Wrapf(err, "Failed to decode JSON from config file %q", path)
	}

	if err = c.Validate(); err != nil {
		return c, errors.Wrapf(err, "Invalid config in %q", path)
	}

	return c, nil
}

// Validate returns an error describing the first invalid value in the config, if there is one.
func (c TrainConfig) Validate() error {
	switch {
	case !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 0):
		return errors.Errorf("learning_rate must be positive and finite (%v)", c.LearningRate)
	case !(c.Momentum >= 0 && c.Momentum < 1):
		return errors.Errorf("momentum must be in the range [0, 1) (%v)", c.Momentum)
	case math.IsNaN(c.InitialBias) || math.IsInf(c.InitialBias, 0):
		return errors.Errorf("initial_bias must be finite (%v)", c.InitialBias)
	case c.MaxIterations < 0:
		return errors.Errorf("max_iterations must be >= 0 (%d)", c.MaxIterations)
	case c.IrreducibleError != nil && !(*c.IrreducibleError >= 0):
		return errors.Errorf("irreducible_error must be >= 0 (%v)", *c.IrreducibleError)
	case c.MaxIterations == 0 && c.IrreducibleError == nil:
		return errors.Errorf("at least one of max_iterations and irreducible_error must be set")
	case c.CheckEvery < 0:
		return errors.Errorf("check_every must be >= 0 (%d)", c.CheckEvery)
	}

	if c.ErrorFunction != "" {
		if _, err := NewErrorFunction(c.ErrorFunction); err != nil {
			return errors.Wrapf(err, "error_function")
		}
	}

	return nil
}

// Backprop returns the LearningProcess described by the config
func (c TrainConfig) Backprop() (*Backprop, error) {
	b, err := NewBackprop(c.LearningRate, c.Momentum)
	if err != nil {
		return nil, err
	}

	return b.UpdateWeights(c.UpdateWeights).UpdateBiases(c.UpdateBiases), nil
}

// StopConditions returns the stop conditions described by the config, MaxIterations first.
func (c TrainConfig) StopConditions() []StopCondition {
	var stops []StopCondition
	if c.MaxIterations > 0 {
		stops = append(stops, MaxIterations(c.MaxIterations))
	}
	if c.IrreducibleError != nil {
		stops = append(stops, IrreducibleError(*c.IrreducibleError))
	}

	return stops
}

// ErrorFunc returns a new instance of the named ErrorFunction. If no name is given, it returns
// nil, so that NewManager will choose the default.
func (c TrainConfig) ErrorFunc() (ErrorFunction, error) {
	if c.ErrorFunction == "" {
		return nil, nil
	}

	return NewErrorFunction(c.ErrorFunction)
}

// Initialize sets the weights and biases of the network as described by the config. Weights are
// drawn from a standard normal distribution, seeded with WeightSeed if it is not zero.
func (c TrainConfig) Initialize(net *Network) {
	var g RNG
	if c.WeightSeed != 0 {
		g = initializers.Normal().Seed(c.WeightSeed)
	}

	net.InitializeWeights(g)
	net.InitializeBiases(c.InitialBias)
}

// ManagerArgs fills in the parts of ManagerArgs that are given by the config. LearnData, CheckData,
// and the rest must still be provided.
func (c TrainConfig) ManagerArgs() (ManagerArgs, error) {
	ef, err := c.ErrorFunc()
	if err != nil {
		return ManagerArgs{}, err
	}

	args := ManagerArgs{
		CheckEvery: c.CheckEvery,
		ErrorFunc:  ef,
		Stops:      c.StopConditions(),
	}

	return args, nil
}
