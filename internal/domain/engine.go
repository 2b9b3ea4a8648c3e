// Package domain contains the qubit state engine: the gate table, state
// transforms, Bloch projection and the animated transitions between states.
package domain

import (
	"io"

	"github.com/charmbracelet/log"
	m "github.com/mouse-blink/bloch/internal/model"
)

// Phase is the engine's animation state.
type Phase int

// Available Phase values.
const (
	PhaseIdle Phase = iota
	PhaseTransitioning
)

func (p Phase) String() string {
	if p == PhaseTransitioning {
		return "transitioning"
	}

	return "idle"
}

// Engine owns the current qubit state. Requests are accepted only while the
// engine is idle; each accepted request starts a transition toward its target
// state, advanced one sample per Step call. Engine is not safe for concurrent use.
type Engine interface {
	ApplyGate(name m.GateName) bool
	Reset() bool
	SetCustomState(alpha, beta m.Complex) (bool, error)
	Randomize() bool
	Measure() (m.Measurement, bool)

	Step() (m.Frame, bool)
	Snapshot() m.Frame
	State() m.State
	Phase() Phase
	LastOperation() m.Operation
}

// Option configures an engine.
type Option func(*engine)

// WithRandomSource sets the source used for measurement and random states.
func WithRandomSource(src RandomSource) Option {
	return func(e *engine) {
		e.rng = src
	}
}

// WithLogger sets the logger for request and measurement events.
func WithLogger(logger *log.Logger) Option {
	return func(e *engine) {
		e.log = logger
	}
}

// WithInitialState replaces the default |0⟩ starting state. The state is
// normalized the way SetCustomState does it; a state that cannot be normalized
// leaves the engine in |0⟩.
func WithInitialState(state m.State) Option {
	return func(e *engine) {
		normalized, err := NormalizeCustom(state.Alpha, state.Beta)
		if err != nil {
			return
		}

		e.state = normalized
	}
}

type engine struct {
	state      m.State
	transition *Transition
	operation  m.Operation
	rng        RandomSource
	log        *log.Logger
}

// NewEngine creates an idle engine in state |0⟩.
func NewEngine(options ...Option) Engine {
	e := &engine{
		state: m.Zero(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.rng == nil {
		e.rng = NewRandomSource(0)
	}

	if e.log == nil {
		e.log = log.New(io.Discard)
	}

	return e
}

func (e *engine) ApplyGate(name m.GateName) bool {
	gate, ok := LookupGate(name)
	if !ok {
		e.log.Warn("unknown gate", "gate", name)
		return false
	}

	return e.begin(m.GateOperation(name), ApplyGate(gate, e.state))
}

func (e *engine) Reset() bool {
	return e.begin(m.OperationReset, m.Zero())
}

func (e *engine) SetCustomState(alpha, beta m.Complex) (bool, error) {
	if e.busy(m.OperationCustom) {
		return false, nil
	}

	target, err := NormalizeCustom(alpha, beta)
	if err != nil {
		return false, err
	}

	return e.begin(m.OperationCustom, target), nil
}

func (e *engine) Randomize() bool {
	if e.busy(m.OperationRandom) {
		return false
	}

	return e.begin(m.OperationRandom, RandomState(e.rng))
}

func (e *engine) Measure() (m.Measurement, bool) {
	if e.busy(m.OperationMeasure) {
		return m.Measurement{}, false
	}

	draw := e.rng.Float64()
	basis, target, probability := Collapse(draw, e.state)

	measurement := m.Measurement{
		Basis:       basis,
		Probability: probability,
		Draw:        draw,
	}

	e.log.Info("measured", "basis", basis, "probability", probability, "draw", draw)

	return measurement, e.begin(m.OperationMeasure, target)
}

func (e *engine) Step() (m.Frame, bool) {
	if e.transition == nil {
		return e.Snapshot(), false
	}

	state, step, ok := e.transition.Next()
	if !ok {
		e.transition = nil
		return e.Snapshot(), false
	}

	e.state = state

	frame := e.frame(step, e.transition.Steps())

	if e.transition.Done() {
		e.transition = nil
		e.log.Debug("transition finished", "operation", e.operation)
	}

	return frame, true
}

func (e *engine) Snapshot() m.Frame {
	return e.frame(0, 0)
}

func (e *engine) State() m.State {
	return e.state
}

func (e *engine) Phase() Phase {
	if e.transition != nil {
		return PhaseTransitioning
	}

	return PhaseIdle
}

func (e *engine) LastOperation() m.Operation {
	return e.operation
}

func (e *engine) busy(op m.Operation) bool {
	if e.transition == nil {
		return false
	}

	e.log.Debug("request rejected while transitioning", "operation", op)

	return true
}

func (e *engine) begin(op m.Operation, target m.State) bool {
	if e.busy(op) {
		return false
	}

	e.operation = op
	e.transition = NewTransition(e.state, target)

	e.log.Debug("transition started", "operation", op)

	return true
}

func (e *engine) frame(step, steps int) m.Frame {
	return m.Frame{
		State:         e.state,
		Bloch:         ToBloch(e.state),
		Probabilities: Probabilities(e.state),
		Operation:     e.operation,
		Step:          step,
		Steps:         steps,
	}
}
