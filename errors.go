package backprop

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and can be compared against directly
// (after errors.Cause, if they have been wrapped).
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrRegisterDuplicate = Error{"Type string is already registered"}
	ErrRegisterUnknown   = Error{"Type string is not registered"}

	ErrNoLayers         = Error{"Network has no layers beyond its inputs"}
	ErrEmptySource      = Error{"PatternSource has no patterns"}
	ErrSourceExhausted  = Error{"PatternSource has no patterns remaining"}
	ErrNoStopConditions = Error{"No stop conditions were given"}

	ErrNotIdle   = Error{"Manager is not idle"}
	ErrRunning   = Error{"Manager is still running"}
	ErrReentrant = Error{"Manager cannot be run or reset from inside a listener"}
	ErrCancelled = Error{"Training was cancelled"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError is returned when a vector does not have the length that the Network expects
// of it. Expected is the size required by the Network, Got is the length that was provided.
type SizeMismatchError struct {
	Expected, Got int

	// What describes the mismatched vector, e.g. "inputs"
	What string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.What, err.Expected, err.Got)
}
