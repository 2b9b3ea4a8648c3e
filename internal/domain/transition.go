package domain

import (
	"iter"

	m "github.com/mouse-blink/bloch/internal/model"
)

// TransitionSteps is the number of interpolation intervals of an animation.
// A transition yields TransitionSteps+1 samples, both endpoints included.
const TransitionSteps = 30

// minNorm is the norm below which an interpolated vector is treated as zero.
const minNorm = 1e-12

// Transition interpolates linearly between two states in amplitude space and
// renormalizes every sample. It yields one sample per call to Next.
type Transition struct {
	start  m.State
	target m.State
	steps  int
	step   int
	last   m.State
}

// NewTransition prepares a transition from start to target.
func NewTransition(start, target m.State) *Transition {
	return &Transition{
		start:  start,
		target: target,
		steps:  TransitionSteps,
		last:   start,
	}
}

// Steps returns the number of intervals.
func (t *Transition) Steps() int {
	return t.steps
}

// Target returns the state the transition ends at.
func (t *Transition) Target() m.State {
	return t.target
}

// Done reports whether every sample has been produced.
func (t *Transition) Done() bool {
	return t.step > t.steps
}

// Next returns the next sample and its step index. ok is false once the
// transition is exhausted.
func (t *Transition) Next() (state m.State, step int, ok bool) {
	if t.Done() {
		return t.last, t.steps, false
	}

	step = t.step
	t.step++

	t.last = t.sample(step)

	return t.last, step, true
}

// Samples exposes the remaining samples as a sequence of (step, state).
func (t *Transition) Samples() iter.Seq2[int, m.State] {
	return func(yield func(int, m.State) bool) {
		for {
			state, step, ok := t.Next()
			if !ok || !yield(step, state) {
				return
			}
		}
	}
}

func (t *Transition) sample(step int) m.State {
	interp := t.target
	if step < t.steps {
		frac := float64(step) / float64(t.steps)
		interp = m.State{
			Alpha: m.Add(t.start.Alpha, m.Sub(t.target.Alpha, t.start.Alpha).Scale(frac)),
			Beta:  m.Add(t.start.Beta, m.Sub(t.target.Beta, t.start.Beta).Scale(frac)),
		}
	}

	norm := interp.Norm()
	if norm < minNorm {
		// start and target are opposite global phases; hold the previous sample
		return t.last
	}

	return interp.Scale(1 / norm)
}
