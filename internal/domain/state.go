package domain

import (
	"errors"
	"math"

	m "github.com/mouse-blink/bloch/internal/model"
)

// ErrInvalidState is returned when a custom state is not finite or has zero
// norm and cannot be normalized.
var ErrInvalidState = errors.New("invalid state: amplitudes must be finite and not all zero")

// ApplyGate multiplies the state vector by the gate matrix. The result is not
// renormalized; gates are unitary and drift is absorbed by the transition.
func ApplyGate(gate m.Gate, state m.State) m.State {
	g := gate.Matrix

	return m.State{
		Alpha: m.Add(m.Mul(g[0][0], state.Alpha), m.Mul(g[0][1], state.Beta)),
		Beta:  m.Add(m.Mul(g[1][0], state.Alpha), m.Mul(g[1][1], state.Beta)),
	}
}

// Probabilities returns |α|² and |β|².
func Probabilities(state m.State) m.Probabilities {
	return m.Probabilities{
		P0: state.Alpha.Abs2(),
		P1: state.Beta.Abs2(),
	}
}

// Collapse decides a measurement outcome from a uniform draw in [0, 1).
// It returns the measured basis, the exact basis state and the probability the
// outcome had before the collapse.
func Collapse(draw float64, state m.State) (int, m.State, float64) {
	probs := Probabilities(state)

	basis := 1
	if draw < probs.P0 {
		basis = 0
	}

	return basis, m.Basis(basis), probs.Of(basis)
}

// NormalizeCustom scales a raw amplitude pair to unit norm.
func NormalizeCustom(alpha, beta m.Complex) (m.State, error) {
	raw := m.State{Alpha: alpha, Beta: beta}
	if !raw.Finite() {
		return m.State{}, ErrInvalidState
	}

	norm := raw.Norm()
	if norm == 0 {
		return m.State{}, ErrInvalidState
	}

	// Divide rather than scale by 1/norm: the reciprocal of a subnormal norm is +Inf.
	return m.State{
		Alpha: m.C(alpha.Re/norm, alpha.Im/norm),
		Beta:  m.C(beta.Re/norm, beta.Im/norm),
	}, nil
}

// RandomState draws a state from three uniform values: polar angle θ in [0, π],
// azimuth φ and a global phase γ in [0, 2π). θ is drawn uniformly, so points
// cluster toward the poles rather than covering the sphere evenly.
func RandomState(src RandomSource) m.State {
	theta := math.Pi * src.Float64()
	phi := 2 * math.Pi * src.Float64()
	global := 2 * math.Pi * src.Float64()

	return m.State{
		Alpha: m.Polar(math.Cos(theta/2), global),
		Beta:  m.Polar(math.Sin(theta/2), phi+global),
	}
}
