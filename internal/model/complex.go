// Package model defines the value types shared by the qubit core and its presentation.
package model

import "math"

// Complex is a complex number stored as an ordered (Re, Im) pair.
// It is a value type: every operation returns a new Complex.
type Complex struct {
	Re float64
	Im float64
}

// C builds a Complex from its real and imaginary parts.
func C(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Polar builds r·e^{iθ}.
func Polar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// Add returns the componentwise sum a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Mul returns the complex product a·b.
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Sub returns a − b.
func Sub(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Scale multiplies both components by a real factor.
func (c Complex) Scale(f float64) Complex {
	return Complex{Re: c.Re * f, Im: c.Im * f}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Abs2 returns |c|².
func (c Complex) Abs2() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Abs returns |c|.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Abs2())
}

// Arg returns the phase angle atan2(Im, Re).
func (c Complex) Arg() float64 {
	return math.Atan2(c.Im, c.Re)
}
