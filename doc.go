// Package backprop provides a framework for training layered feed-forward neural networks by
// backpropagation, with a manager that controls the training as it runs.
//
// Creating Networks
//
// Networks are strictly layered: the first layer holds the inputs, and every neuron of each
// following layer receives a weighted synapse from every neuron in the layer before it. For
// brevity, backprop is abbreviated 'bp':
//
//		net, err := bp.New(2)
//		if err != nil {
//			return err
//		}
//
//		if err = net.AddLayer(3, activations.Sigmoid()); err != nil {
//			return err
//		}
//		if err = net.AddLayer(1, activations.Sigmoid()); err != nil {
//			return err
//		}
//
//		net.InitializeWeights(initializers.Normal().Seed(1))
//		net.InitializeBiases(0)
//
// Activation functions can be found in the subpackage "activations", error functions in
// "errfuncs", and weight generators in "initializers". Each subpackage registers its types by name
// when imported, which is required for loading saved Networks.
//
// Training
//
// Training is done by a Manager, which repeatedly runs a LearningProcess (usually Backprop) over
// every pattern of its learning data. Each pass over the data is an iteration. After every
// iteration, the Manager can check the performance of the Network against separate data, and then
// evaluates its stop conditions:
//
//		proc, err := bp.NewBackprop(0.5, 0.3)
//		// ...
//		m, err := bp.NewManager(net, proc, bp.ManagerArgs{
//			LearnData: learn,
//			CheckData: check,
//			Stops:     []bp.StopCondition{bp.MaxIterations(1000), bp.IrreducibleError(0.01)},
//			Listeners: []bp.Listener{func(e bp.LearningEvent) { /* ... */ }},
//		})
//		// ...
//		err = m.Run(ctx)
//
// Run blocks until training is finished. From other goroutines, training can be paused with
// Pause, continued with Resume, and stopped with Cancel. These are only honored in between
// patterns.
//
// Saving and Loading
//
// Networks can be written to a directory with:
//
//		func (net *Network) Save(dirPath string, overwrite bool) error
//
// and read back with:
//
//		func Load(dirPath string) (*Network, error)
//
// The types of every function in the Network must have been registered before loading; importing
// the subpackages is enough for the provided ones.
package backprop
