package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	m "github.com/mouse-blink/bloch/internal/model"
)

// displayEpsilon is the magnitude below which a component is shown as zero.
const displayEpsilon = 1e-4

// FormatComplex renders c with three decimals, dropping components that round to zero.
func FormatComplex(c m.Complex) string {
	re, im := c.Re, c.Im
	if math.Abs(re) < displayEpsilon {
		re = 0
	}

	if math.Abs(im) < displayEpsilon {
		im = 0
	}

	switch {
	case re == 0 && im == 0:
		return "0"
	case im == 0:
		return fmt.Sprintf("%.3f", re)
	case re == 0:
		return fmt.Sprintf("%.3fi", im)
	}

	sign := "+"
	if im < 0 {
		sign = "-"
	}

	return fmt.Sprintf("%.3f %s %.3fi", re, sign, math.Abs(im))
}

// FormatState renders |ψ⟩ = (α)|0⟩ + (β)|1⟩.
func FormatState(state m.State) string {
	return fmt.Sprintf("|ψ⟩ = (%s)|0⟩ + (%s)|1⟩", FormatComplex(state.Alpha), FormatComplex(state.Beta))
}

// FormatPercent renders a probability as a percentage with one decimal.
// Every probability shown to the user goes through this function.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// FormatBloch renders a Bloch vector as (x, y, z).
func FormatBloch(v m.BlochVector) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", cleanZero(v.X), cleanZero(v.Y), cleanZero(v.Z))
}

// FormatMeasurement renders the collapse announcement.
func FormatMeasurement(measurement m.Measurement) string {
	return fmt.Sprintf("Measured |%d⟩ (p = %s)", measurement.Basis, FormatPercent(measurement.Probability))
}

// FormatOperation renders the last operation label.
func FormatOperation(op m.Operation) string {
	if op == m.OperationNone {
		return "—"
	}

	return string(op)
}

// basisArrow mirrors the bar markers: shown only for outcomes above 10%.
func basisArrow(basis int, p float64) string {
	if p <= 0.1 {
		return ""
	}

	if basis == 0 {
		return "↑"
	}

	return "↓"
}

// parseAmplitude sanitizes user input: anything that is not a finite number reads as 0.
func parseAmplitude(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

func cleanZero(v float64) float64 {
	if math.Abs(v) < displayEpsilon {
		return 0
	}

	return v
}
