package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexArithmetic(t *testing.T) {
	a, b := C(1, 2), C(3, -1)

	assert.Equal(t, C(4, 1), Add(a, b))
	assert.Equal(t, C(-2, 3), Sub(a, b))
	assert.Equal(t, C(5, 5), Mul(a, b))
	assert.Equal(t, C(1, -2), a.Conj())
	assert.Equal(t, C(2, 4), a.Scale(2))
	assert.InDelta(t, 5, a.Abs2(), 1e-12)
	assert.InDelta(t, math.Sqrt(5), a.Abs(), 1e-12)

	p := Polar(2, math.Pi/2)
	assert.InDelta(t, 0, p.Re, 1e-12)
	assert.InDelta(t, 2, p.Im, 1e-12)
	assert.InDelta(t, math.Pi/2, p.Arg(), 1e-12)
}

func TestStateHelpers(t *testing.T) {
	assert.Equal(t, Zero(), Basis(0))
	assert.Equal(t, One(), Basis(1))

	s := State{Alpha: C(3, 0), Beta: C(0, 4)}
	assert.InDelta(t, 5, s.Norm(), 1e-12)
	assert.InDelta(t, 1, s.Scale(0.2).Norm(), 1e-12)
	assert.InDelta(t, 5e200, State{Alpha: C(3e200, 0), Beta: C(0, 4e200)}.Norm(), 1e188)
	assert.Equal(t, 1e-200, State{Alpha: C(1e-200, 0)}.Norm())

	assert.True(t, s.Finite())
	assert.False(t, State{Alpha: C(math.NaN(), 0)}.Finite())
	assert.False(t, State{Beta: C(0, math.Inf(-1))}.Finite())

	p := Probabilities{P0: 0.25, P1: 0.75}
	assert.InDelta(t, 0.25, p.Of(0), 1e-12)
	assert.InDelta(t, 0.75, p.Of(1), 1e-12)
}

func TestGateDagger(t *testing.T) {
	s := Gate{Name: GateS, Matrix: [2][2]Complex{{C(1, 0), C(0, 0)}, {C(0, 0), C(0, 1)}}}

	d := s.Dagger()
	assert.Equal(t, GateName("S†"), d.Name)
	assert.Equal(t, C(0, -1), d.Matrix[1][1])

	asym := Gate{Matrix: [2][2]Complex{{C(0, 0), C(1, 1)}, {C(0, 0), C(0, 0)}}}
	assert.Equal(t, C(1, -1), asym.Dagger().Matrix[1][0])
}

func TestFrameAndShots(t *testing.T) {
	assert.False(t, Frame{}.Animating())
	assert.True(t, Frame{Step: 0, Steps: 30}.Animating())
	assert.False(t, Frame{Step: 30, Steps: 30}.Animating())

	summary := ShotSummary{Shots: 4, Counts: [2]int{1, 3}}
	assert.InDelta(t, 0.25, summary.Observed(0), 1e-12)
	assert.InDelta(t, 0.75, summary.Observed(1), 1e-12)
	assert.Zero(t, ShotSummary{}.Observed(1))
}
