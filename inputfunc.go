package backprop

type weightedSum int8

// WeightedSum returns the standard InputFunction: the sum of each source output multiplied by the
// weight of its synapse. It is the default for every neuron added by AddLayer.
func WeightedSum() weightedSum {
	return weightedSum(0)
}

func (w weightedSum) TypeString() string {
	return "weighted sum"
}

func (w weightedSum) Input(n int, weight, source func(int) float64) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += weight(i) * source(i)
	}

	return sum
}
