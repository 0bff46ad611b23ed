package backprop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// State is the stage of its life that a Manager is in
type State int32

const (
	// Idle Managers have been created (or Reset), but not yet Run
	Idle State = iota
	Running
	Paused
	// Terminated Managers must be Reset before they can be Run again
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	}

	return "unknown"
}

// Snapshot is a copy of the counters of a Manager at a single point in time
type Snapshot struct {
	ID    uuid.UUID
	State State

	// Iteration is the number of iterations that have been completed. During an iteration, it is
	// the index of the current one.
	Iteration int

	// PatternIndex is the number of patterns that have been learned in the current iteration
	PatternIndex int

	// AccumulatedError is the mean error of the patterns learned so far in the current iteration
	AccumulatedError float64

	// TotalError is the mean error across the learning data of the most recently completed
	// iteration
	TotalError float64

	// Checked is true once a performance check has been done, after which Performance and
	// CheckError are set
	Checked     bool
	Performance float64
	CheckError  float64

	// StopMessage gives the reason that the Manager terminated. It is empty until then.
	StopMessage string
}

// ManagerArgs holds the optional and required arguments to NewManager.
type ManagerArgs struct {
	// LearnData is the source of patterns that are learned, once through per iteration. It is
	// required, and must not be empty.
	LearnData PatternSource

	// CheckData is the source of patterns used to measure the performance of the Network. It may
	// be nil, in which case no checks are done.
	CheckData PatternSource

	// CheckEvery is the number of iterations between performance checks. Zero is treated as 1.
	CheckEvery int

	// ErrorFunc gives the error of each pattern. If nil, the ErrorFunction registered as "mse" is
	// used (see the subpackage "errfuncs").
	ErrorFunc ErrorFunction

	// IsCorrect returns whether or not the network outputs are correct, given the expected
	// outputs, during performance checks. Defaults to CorrectHighest.
	IsCorrect func(outs, expected []float64) bool

	// Stops are checked in order at the end of each iteration. At least one is required.
	Stops []StopCondition

	Listeners []Listener

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Manager drives the training of a single Network: it repeatedly runs a LearningProcess over every
// pattern of its learning data, checks performance, and evaluates stop conditions. Training can be
// paused, resumed, and cancelled from other goroutines; these are only honored between patterns.
//
// A Manager must not be Run more than once at a time, and Managers that run at the same time
// should not share a Network, PatternSource, or LearningProcess.
type Manager struct {
	id uuid.UUID

	net  *Network
	proc LearningProcess

	learnData, checkData PatternSource
	checkEvery           int

	errFunc   ErrorFunction
	isCorrect func([]float64, []float64) bool
	stops     []StopCondition
	listeners []Listener

	logger *slog.Logger

	running     atomic.Bool
	dispatching atomic.Bool
	cancelled   atomic.Bool

	// mu guards everything below
	mu sync.Mutex

	// non-nil if a pause has been requested. Closed to resume.
	resume chan struct{}

	acc Accumulator
	s   Snapshot
}

// NewManager creates a Manager for the given Network and LearningProcess. Configuration errors are
// returned immediately.
func NewManager(net *Network, proc LearningProcess, args ManagerArgs) (*Manager, error) {
	if net == nil {
		return nil, NilArgError{"Network"}
	} else if proc == nil {
		return nil, NilArgError{"LearningProcess"}
	} else if args.LearnData == nil {
		return nil, NilArgError{"LearnData"}
	} else if net.NumLayers() < 2 {
		return nil, errors.Wrapf(ErrNoLayers, "Can't create manager")
	} else if args.LearnData.IsEmpty() {
		return nil, errors.Wrapf(ErrEmptySource, "Can't create manager, LearnData is empty")
	} else if len(args.Stops) == 0 {
		return nil, errors.Wrapf(ErrNoStopConditions, "Can't create manager")
	} else if args.CheckEvery < 0 {
		return nil, errors.Errorf("Can't create manager, CheckEvery must be >= 0 (%d)", args.CheckEvery)
	}

	for i, s := range args.Stops {
		if s == nil {
			return nil, NilArgError{fmt.Sprintf("StopCondition #%d", i)}
		}
	}

	if args.ErrorFunc == nil {
		ef, err := NewErrorFunction("mse")
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create manager, no ErrorFunc given and default is not registered")
		}

		args.ErrorFunc = ef
	}

	if args.IsCorrect == nil {
		args.IsCorrect = CorrectHighest
	}

	if args.CheckEvery == 0 {
		args.CheckEvery = 1
	}

	if args.Logger == nil {
		args.Logger = slog.Default()
	}

	m := &Manager{
		id:         uuid.New(),
		net:        net,
		proc:       proc,
		learnData:  args.LearnData,
		checkData:  args.CheckData,
		checkEvery: args.CheckEvery,
		errFunc:    args.ErrorFunc,
		isCorrect:  args.IsCorrect,
		stops:      append([]StopCondition(nil), args.Stops...),
		listeners:  append([]Listener(nil), args.Listeners...),
	}

	m.s.ID = m.id
	m.logger = args.Logger.With("manager", m.id.String())
	return m, nil
}

// ID returns the unique id given to the Manager when it was created
func (m *Manager) ID() uuid.UUID {
	return m.id
}

// Network returns the Network that the Manager trains
func (m *Manager) Network() *Network {
	return m.net
}

// State returns the current State of the Manager
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.State
}

// Snapshot returns a copy of the current counters of the Manager
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// assumes m.mu is held
func (m *Manager) snapshot() Snapshot {
	s := m.s
	s.AccumulatedError = m.acc.Mean()
	return s
}

// Pause requests that training stop before the next pattern, until Resume or Cancel is called.
// Pausing before Run is allowed, and will pause before the first pattern.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.s.State == Terminated || m.resume != nil {
		return
	}

	m.resume = make(chan struct{})
}

// Resume continues training after a call to Pause. If the Manager is not paused, Resume does
// nothing.
func (m *Manager) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.resume != nil {
		close(m.resume)
		m.resume = nil
	}
}

// Cancel requests that training stop before the next pattern. Run will return ErrCancelled. The
// remaining patterns of the current iteration are not learned.
func (m *Manager) Cancel() {
	m.cancelled.Store(true)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.resume != nil {
		close(m.resume)
		m.resume = nil
	}
}

// Reset returns a Terminated Manager to Idle, clearing its counters and the state of its
// LearningProcess. The weights of the Network are not changed. Reset returns ErrRunning if the
// Manager is Running or Paused.
func (m *Manager) Reset() error {
	if m.dispatching.Load() {
		return ErrReentrant
	} else if m.running.Load() {
		return ErrRunning
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Run may have started since the check above
	if m.s.State == Running || m.s.State == Paused {
		return ErrRunning
	}

	m.s = Snapshot{ID: m.id, State: Idle}
	m.acc.Reset()
	m.resume = nil
	m.cancelled.Store(false)
	m.proc.Reset()

	return nil
}

// Run trains the Network until one of the stop conditions is satisfied, in which case it returns
// nil. Run blocks, and should be called from the goroutine that is meant to do the training.
//
// If Cancel is called, Run returns ErrCancelled. If the context is done, Run returns its error. Any
// other error (such as a pattern that doesn't fit the Network) aborts training immediately. In all
// cases, the Manager ends Terminated.
func (m *Manager) Run(ctx context.Context) (err error) {
	if m.dispatching.Load() {
		return ErrReentrant
	} else if !m.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer m.running.Store(false)

	m.mu.Lock()
	if m.s.State != Idle {
		m.mu.Unlock()
		return ErrNotIdle
	}
	m.s.State = Running
	m.mu.Unlock()

	m.logger.Info("Starting training", "network", m.net.String(), "patterns", m.learnData.Size())

	defer func() {
		m.terminate(err)
	}()

	for {
		if err := m.iterate(ctx); err != nil {
			return err
		}

		m.mu.Lock()
		iter := m.s.Iteration
		m.mu.Unlock()

		if m.checkData != nil && iter%m.checkEvery == 0 {
			if err := m.check(); err != nil {
				return errors.Wrapf(err, "Checking performance after iteration %d failed", iter)
			}
		}

		if stop, msg := m.evaluateStops(); stop {
			m.mu.Lock()
			m.s.StopMessage = msg
			m.mu.Unlock()
			return nil
		}
	}
}

func (m *Manager) terminate(err error) {
	m.mu.Lock()
	m.s.State = Terminated
	m.resume = nil
	if err != nil {
		m.s.StopMessage = err.Error()
	}
	s := m.s
	m.mu.Unlock()

	switch {
	case err == nil:
		m.logger.Info("Finished training", "iterations", s.Iteration, "error", s.TotalError, "reason", s.StopMessage)
	case errors.Cause(err) == ErrCancelled:
		m.logger.Info("Training cancelled", "iteration", s.Iteration, "pattern", s.PatternIndex)
	default:
		m.logger.Error("Training failed", "iteration", s.Iteration, "pattern", s.PatternIndex, "err", err)
	}
}

// iterate runs through every pattern in the learning data once
func (m *Manager) iterate(ctx context.Context) error {
	m.learnData.Rewind()

	m.mu.Lock()
	m.acc.Reset()
	m.s.PatternIndex = 0
	iter := m.s.Iteration
	m.mu.Unlock()

	for m.learnData.HasNext() {
		if err := m.wait(ctx); err != nil {
			return err
		}

		m.mu.Lock()
		index := m.s.PatternIndex
		m.mu.Unlock()

		p, err := m.learnData.Next()
		if err != nil {
			return errors.Wrapf(err, "Failed to get pattern %d on iteration %d", index, iter)
		}

		errs, err := m.proc.Learn(m.net, p)
		if err != nil {
			return errors.Wrapf(err, "Failed to learn pattern %d on iteration %d", index, iter)
		}

		e := m.errFunc.Error(errs)

		m.mu.Lock()
		m.acc.Add(e)
		m.s.PatternIndex++
		s := m.snapshot()
		m.mu.Unlock()

		m.emit(PatternProcessed, s)
	}

	m.mu.Lock()
	m.s.TotalError = m.acc.Mean()
	s := m.snapshot()
	m.mu.Unlock()

	m.logger.Debug("Finished iteration", "iteration", iter, "error", s.TotalError)
	m.emit(IterationProcessed, s)

	m.mu.Lock()
	m.s.Iteration++
	m.mu.Unlock()

	return nil
}

// wait blocks while the Manager is paused, and returns an error if training should stop
func (m *Manager) wait(ctx context.Context) error {
	for {
		if m.cancelled.Load() {
			return ErrCancelled
		} else if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "Training stopped")
		}

		m.mu.Lock()
		ch := m.resume
		if ch == nil {
			m.s.State = Running
			m.mu.Unlock()
			return nil
		}

		m.s.State = Paused
		m.mu.Unlock()

		m.logger.Debug("Paused")

		select {
		case <-ch:
		case <-ctx.Done():
		}
	}
}

// check runs through the check data without changing the Network
func (m *Manager) check() error {
	m.checkData.Rewind()

	var acc Accumulator
	var correct, total int

	for m.checkData.HasNext() {
		p, err := m.checkData.Next()
		if err != nil {
			return errors.Wrapf(err, "Failed to get check pattern %d", total)
		} else if err = m.net.checkPattern(p); err != nil {
			return errors.Wrapf(err, "Check pattern %d does not fit Network", total)
		}

		outs, err := m.net.Forward(p.input)
		if err != nil {
			return errors.Wrapf(err, "Failed to get Network outputs with check pattern %d", total)
		}

		errs := make([]float64, len(outs))
		for i := range outs {
			errs[i] = p.expected[i] - outs[i]
		}

		acc.Add(m.errFunc.Error(errs))
		if m.isCorrect(outs, p.expected) {
			correct++
		}

		total++
	}

	var perf float64
	if total != 0 {
		perf = float64(correct) / float64(total)
	}

	m.mu.Lock()
	m.s.Checked = true
	m.s.Performance = perf
	m.s.CheckError = acc.Mean()
	s := m.snapshot()
	m.mu.Unlock()

	m.logger.Debug("Checked performance", "iteration", s.Iteration, "performance", perf, "error", s.CheckError)
	m.emit(PerformanceCalculated, s)

	return nil
}

func (m *Manager) evaluateStops() (bool, string) {
	s := m.Snapshot()
	for _, st := range m.stops {
		if stop, msg := st.Stop(s); stop {
			return true, msg
		}
	}

	return false, ""
}

func (m *Manager) emit(kind EventKind, s Snapshot) {
	if len(m.listeners) == 0 {
		return
	}

	m.dispatching.Store(true)
	defer m.dispatching.Store(false)

	ev := LearningEvent{Kind: kind, State: s}
	for _, l := range m.listeners {
		l(ev)
	}
}
