package domain

import (
	"testing"

	m "github.com/mouse-blink/bloch/internal/model"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-9

func matMul(a, b m.Gate) [2][2]m.Complex {
	var out [2][2]m.Complex

	for i := range 2 {
		for j := range 2 {
			out[i][j] = m.Add(m.Mul(a.Matrix[i][0], b.Matrix[0][j]), m.Mul(a.Matrix[i][1], b.Matrix[1][j]))
		}
	}

	return out
}

func shouldBeState(actual any, expected ...any) string {
	got := actual.(m.State)
	want := expected[0].(m.State)

	for _, pair := range [][2]float64{
		{got.Alpha.Re, want.Alpha.Re},
		{got.Alpha.Im, want.Alpha.Im},
		{got.Beta.Re, want.Beta.Re},
		{got.Beta.Im, want.Beta.Im},
	} {
		if msg := ShouldAlmostEqual(pair[0], pair[1], tolerance); msg != "" {
			return msg
		}
	}

	return ""
}

func TestGateTable(t *testing.T) {
	Convey("Given the gate table", t, func() {
		gates := Gates()

		Convey("It lists the six gates in display order", func() {
			names := make([]m.GateName, 0, len(gates))
			for _, g := range gates {
				names = append(names, g.Name)
			}

			So(names, ShouldResemble, []m.GateName{m.GateX, m.GateY, m.GateZ, m.GateH, m.GateS, m.GateT})
		})

		Convey("Every gate is unitary", func() {
			for _, g := range gates {
				product := matMul(g, g.Dagger())

				So(product[0][0].Re, ShouldAlmostEqual, 1, tolerance)
				So(product[1][1].Re, ShouldAlmostEqual, 1, tolerance)
				So(product[0][0].Im, ShouldAlmostEqual, 0, tolerance)
				So(product[1][1].Im, ShouldAlmostEqual, 0, tolerance)
				So(product[0][1].Abs(), ShouldAlmostEqual, 0, tolerance)
				So(product[1][0].Abs(), ShouldAlmostEqual, 0, tolerance)
			}
		})

		Convey("Applying a gate then its conjugate transpose restores the state", func() {
			start := m.State{Alpha: m.C(0.6, 0), Beta: m.C(0, 0.8)}

			for _, g := range gates {
				back := ApplyGate(g.Dagger(), ApplyGate(g, start))
				So(back, shouldBeState, start)
			}
		})

		Convey("Unknown names are not found", func() {
			_, ok := LookupGate("CNOT")
			So(ok, ShouldBeFalse)
		})

		Convey("Y has ±i off the diagonal", func() {
			y, ok := LookupGate(m.GateY)
			So(ok, ShouldBeTrue)
			So(y.Matrix[0][1], ShouldResemble, m.C(0, -1))
			So(y.Matrix[1][0], ShouldResemble, m.C(0, 1))
		})
	})
}
