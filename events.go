package backprop

// EventKind identifies which point of training a LearningEvent was sent from
type EventKind int8

const (
	// PatternProcessed is sent after each pattern has been learned
	PatternProcessed EventKind = iota

	// IterationProcessed is sent after every pattern in the learning data has been learned, once
	// TotalError is available
	IterationProcessed

	// PerformanceCalculated is sent after the network has been checked against the check data
	PerformanceCalculated
)

func (k EventKind) String() string {
	switch k {
	case PatternProcessed:
		return "pattern processed"
	case IterationProcessed:
		return "iteration processed"
	case PerformanceCalculated:
		return "performance calculated"
	}

	return "unknown event"
}

// LearningEvent is sent to every Listener of a Manager
type LearningEvent struct {
	Kind EventKind

	// State is the state of the Manager at the time the event was sent
	State Snapshot
}

// Listener receives events from a Manager. Listeners are called in the order that they were given,
// on the same goroutine that is running the Manager, so a slow Listener will slow training.
//
// Listeners may call Pause, Resume, Cancel, State, and Snapshot on the Manager. Calls to Run or
// Reset from a Listener return ErrReentrant.
type Listener func(LearningEvent)
