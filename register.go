package backprop

import (
	"sync"

	"github.com/pkg/errors"
)

var registry = struct {
	sync.RWMutex

	activations map[string]func() ActivationFunction
	inputFuncs  map[string]func() InputFunction
	errorFuncs  map[string]func() ErrorFunction
}{
	activations: make(map[string]func() ActivationFunction),
	inputFuncs:  make(map[string]func() InputFunction),
	errorFuncs:  make(map[string]func() ErrorFunction),
}

func init() {
	if err := RegisterInputFunction(WeightedSum().TypeString(), func() InputFunction { return WeightedSum() }); err != nil {
		panic(err)
	}
}

// RegisterActivation allows the ActivationFunction to be recreated by name, for use by Load and
// FromSnapshot. The name should be the same as the one given by TypeString. The constructor should
// return a blank value; any parameters are decoded into it from JSON.
//
// RegisterActivation will return ErrRegisterDuplicate if the name is taken, and
// ErrRegisterNilReturn if the constructor returns nil. The subpackage "activations" registers all
// of its types from init().
func RegisterActivation(name string, f func() ActivationFunction) error {
	if f == nil {
		return NilArgError{"Constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.activations[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register activation function %q", name)
	}

	registry.activations[name] = f
	return nil
}

// RegisterInputFunction is the equivalent of RegisterActivation for InputFunctions. WeightedSum is
// always registered.
func RegisterInputFunction(name string, f func() InputFunction) error {
	if f == nil {
		return NilArgError{"Constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.inputFuncs[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register input function %q", name)
	}

	registry.inputFuncs[name] = f
	return nil
}

// RegisterErrorFunction is the equivalent of RegisterActivation for ErrorFunctions. Registered
// ErrorFunctions can be selected by name in a TrainConfig, and "mse" is used as the default by
// NewManager. The subpackage "errfuncs" registers all of its types from init().
func RegisterErrorFunction(name string, f func() ErrorFunction) error {
	if f == nil {
		return NilArgError{"Constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.errorFuncs[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register error function %q", name)
	}

	registry.errorFuncs[name] = f
	return nil
}

// NewActivation returns a blank ActivationFunction registered under the name, or
// ErrRegisterUnknown.
func NewActivation(name string) (ActivationFunction, error) {
	registry.RLock()
	f, ok := registry.activations[name]
	registry.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrRegisterUnknown, "No activation function %q", name)
	}

	return f(), nil
}

// NewInputFunction returns the InputFunction registered under the name, or ErrRegisterUnknown.
func NewInputFunction(name string) (InputFunction, error) {
	registry.RLock()
	f, ok := registry.inputFuncs[name]
	registry.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrRegisterUnknown, "No input function %q", name)
	}

	return f(), nil
}

// NewErrorFunction returns the ErrorFunction registered under the name, or ErrRegisterUnknown.
func NewErrorFunction(name string) (ErrorFunction, error) {
	registry.RLock()
	f, ok := registry.errorFuncs[name]
	registry.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrRegisterUnknown, "No error function %q", name)
	}

	return f(), nil
}
