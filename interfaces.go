package backprop

// ActivationFunction determines the output of a Neuron from its net input. All methods must be pure.
//
// Parameterised functions (e.g. a gaussian with its sigma) should be encodable to JSON, so that
// they can be recreated by Load. The blank value returned by the registered constructor will be
// decoded into.
type ActivationFunction interface {
	// TypeString returns the string corresponding to the type of the function. This is the name
	// that the constructor must be registered under.
	TypeString() string

	// Output gives the value of the function at x.
	Output(x float64) float64

	// Derivative gives the first derivative of the function at x.
	Derivative(x float64) float64
}

// InputFunction reduces the incoming synapses of a Neuron to a single value. Bias is never
// included; it is added separately by the Network.
type InputFunction interface {
	TypeString() string

	// arguments: number of incoming synapses, weight of synapse at index,
	// output of the source neuron of synapse at index
	Input(int, func(int) float64, func(int) float64) float64
	// Input(n int, weight, source func(int) float64) float64
}

// ErrorFunction gives the error of a single pattern from its error vector (expected outputs minus
// actual outputs). Averaging across patterns is left to an Accumulator.
type ErrorFunction interface {
	TypeString() string

	Error(errs []float64) float64
}

// LearningProcess is the strategy used by a Manager to adjust a Network for a single Pattern.
type LearningProcess interface {
	// Learn runs the pattern through the Network, changes its weights and biases, and returns the
	// error vector (expected - actual) of the outputs from before the adjustment.
	Learn(net *Network, p Pattern) ([]float64, error)

	// Reset drops any state carried between patterns, such as momentum.
	Reset()
}

// PatternSource is a finite, restartable sequence of Patterns. PatternSources are owned by the
// caller; Managers only read from them. A PatternSource keeps its position, so it must not be
// given to Managers that run at the same time.
type PatternSource interface {
	// Size returns the total number of patterns in the source
	Size() int

	// IsEmpty is equivalent to Size() == 0
	IsEmpty() bool

	// Rewind moves the source back to its first pattern
	Rewind()

	// HasNext returns whether or not Next will give another pattern
	HasNext() bool

	// Next returns the next pattern in order. If there are none left, it should return
	// ErrSourceExhausted
	Next() (Pattern, error)
}

// StopCondition is a predicate over the state of a Manager, checked at the end of each iteration.
// If Stop returns true, training finishes successfully, with the given message.
type StopCondition interface {
	Stop(s Snapshot) (bool, string)
}

// RNG is a source of values for initializing weights. Implementations are provided by the
// subpackage "initializers".
type RNG interface {
	Gen() float64
}
