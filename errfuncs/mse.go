package errfuncs

type mse int8

// MSE returns the squared error function: the sum of 0.5 * e² over every value in the error
// vector. It is the default ErrorFunction of backprop.Manager.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Error(errs []float64) float64 {
	var sum float64
	for _, e := range errs {
		sum += 0.5 * e * e
	}

	return sum
}
