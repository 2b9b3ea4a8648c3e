package domain

import (
	"math"

	m "github.com/mouse-blink/bloch/internal/model"
)

// ToBloch projects a normalized state onto the Bloch sphere.
// |α| is clamped to [0, 1] so rounding past 1.0 cannot turn acos into NaN.
func ToBloch(state m.State) m.BlochVector {
	alphaAbs := math.Min(math.Max(state.Alpha.Abs(), 0), 1)

	theta := 2 * math.Acos(alphaAbs)
	phi := state.Beta.Arg() - state.Alpha.Arg()

	return m.BlochVector{
		X: math.Sin(theta) * math.Cos(phi),
		Y: math.Sin(theta) * math.Sin(phi),
		Z: math.Cos(theta),
	}
}
