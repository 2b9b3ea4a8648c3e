package model

import "math"

// State is a single-qubit state vector: Alpha is the |0⟩ amplitude, Beta the |1⟩ amplitude.
type State struct {
	Alpha Complex
	Beta  Complex
}

// Zero returns the |0⟩ basis state.
func Zero() State {
	return State{Alpha: C(1, 0), Beta: C(0, 0)}
}

// One returns the |1⟩ basis state.
func One() State {
	return State{Alpha: C(0, 0), Beta: C(1, 0)}
}

// Basis returns |0⟩ or |1⟩ for index 0 or 1.
func Basis(index int) State {
	if index == 1 {
		return One()
	}

	return Zero()
}

// Norm returns sqrt(|α|² + |β|²) without squaring the components, so very
// large or very small amplitudes neither overflow nor underflow.
func (s State) Norm() float64 {
	return math.Hypot(math.Hypot(s.Alpha.Re, s.Alpha.Im), math.Hypot(s.Beta.Re, s.Beta.Im))
}

// Finite reports whether every component is a finite number.
func (s State) Finite() bool {
	for _, v := range [4]float64{s.Alpha.Re, s.Alpha.Im, s.Beta.Re, s.Beta.Im} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Scale multiplies both amplitudes by f.
func (s State) Scale(f float64) State {
	return State{Alpha: s.Alpha.Scale(f), Beta: s.Beta.Scale(f)}
}

// Probabilities holds the measurement probabilities of |0⟩ and |1⟩.
type Probabilities struct {
	P0 float64
	P1 float64
}

// Of returns the probability of the given basis index.
func (p Probabilities) Of(basis int) float64 {
	if basis == 1 {
		return p.P1
	}

	return p.P0
}

// BlochVector is the Cartesian point of a state on the Bloch sphere.
type BlochVector struct {
	X float64
	Y float64
	Z float64
}
