package domain

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	m "github.com/mouse-blink/bloch/internal/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine(t *testing.T) {
	Convey("Given a new engine", t, func() {
		src := &FixedSource{Draws: []float64{0.3}}
		e := NewEngine(WithRandomSource(src))

		Convey("It starts idle in |0⟩", func() {
			So(e.Phase(), ShouldEqual, PhaseIdle)
			So(e.State(), ShouldResemble, m.Zero())

			frame := e.Snapshot()
			So(frame.Bloch.Z, ShouldAlmostEqual, 1, tolerance)
			So(frame.Probabilities.P0, ShouldEqual, 1.0)
			So(frame.Animating(), ShouldBeFalse)
		})

		Convey("Stepping while idle produces the resting frame", func() {
			frame, advanced := e.Step()
			So(advanced, ShouldBeFalse)
			So(frame.State, ShouldResemble, m.Zero())
		})

		Convey("When H is requested", func() {
			So(e.ApplyGate(m.GateH), ShouldBeTrue)
			So(e.Phase(), ShouldEqual, PhaseTransitioning)
			So(e.LastOperation(), ShouldEqual, m.Operation("H"))

			Convey("Further requests are rejected until the transition ends", func() {
				So(e.ApplyGate(m.GateX), ShouldBeFalse)
				So(e.Reset(), ShouldBeFalse)
				So(e.Randomize(), ShouldBeFalse)

				accepted, err := e.SetCustomState(m.C(1, 0), m.C(0, 0))
				So(accepted, ShouldBeFalse)
				So(err, ShouldBeNil)

				_, measured := e.Measure()
				So(measured, ShouldBeFalse)
				So(e.LastOperation(), ShouldEqual, m.Operation("H"))
			})

			Convey("Each step yields one frame until the engine is idle", func() {
				frames := 0
				final := Settle(e, func(frame m.Frame) {
					frames++
					So(frame.State.Norm(), ShouldAlmostEqual, 1, 1e-6)
					So(frame.Steps, ShouldEqual, TransitionSteps)
				})

				So(frames, ShouldEqual, TransitionSteps+1)
				So(e.Phase(), ShouldEqual, PhaseIdle)
				So(final.Probabilities.P0, ShouldAlmostEqual, 0.5, tolerance)
				So(final.Probabilities.P1, ShouldAlmostEqual, 0.5, tolerance)
			})

			Convey("After settling a new request is accepted", func() {
				Settle(e, nil)
				So(e.ApplyGate(m.GateH), ShouldBeTrue)
				Settle(e, nil)
				So(e.State(), shouldBeState, m.Zero())
			})
		})

		Convey("An unknown gate is ignored", func() {
			So(e.ApplyGate("Q"), ShouldBeFalse)
			So(e.Phase(), ShouldEqual, PhaseIdle)
		})

		Convey("A zero custom state fails without changing anything", func() {
			accepted, err := e.SetCustomState(m.C(0, 0), m.C(0, 0))

			So(accepted, ShouldBeFalse)
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
			So(e.Phase(), ShouldEqual, PhaseIdle)
			So(e.State(), ShouldResemble, m.Zero())
		})

		Convey("A custom state is normalized before animating to it", func() {
			accepted, err := e.SetCustomState(m.C(1, 0), m.C(1, 0))
			So(err, ShouldBeNil)
			So(accepted, ShouldBeTrue)

			final := Settle(e, nil)
			So(final.Bloch.X, ShouldAlmostEqual, 1, tolerance)
			So(e.LastOperation(), ShouldEqual, m.OperationCustom)
		})

		Convey("Randomize ends in a normalized state", func() {
			So(e.Randomize(), ShouldBeTrue)
			So(Settle(e, nil).State.Norm(), ShouldAlmostEqual, 1, 1e-6)
		})

		Convey("Reset returns to |0⟩", func() {
			e.ApplyGate(m.GateX)
			Settle(e, nil)
			So(e.State(), shouldBeState, m.One())

			So(e.Reset(), ShouldBeTrue)
			Settle(e, nil)
			So(e.State(), ShouldResemble, m.Zero())
			So(e.LastOperation(), ShouldEqual, m.OperationReset)
		})
	})

	Convey("Given an engine holding |+⟩", t, func() {
		src := &FixedSource{}
		e := NewEngine(WithRandomSource(src))
		e.ApplyGate(m.GateH)
		Settle(e, nil)

		Convey("A draw of 0.3 collapses to exactly |0⟩", func() {
			src.Draws = []float64{0.3}

			measurement, ok := e.Measure()
			So(ok, ShouldBeTrue)
			So(measurement.Basis, ShouldEqual, 0)
			So(measurement.Probability, ShouldAlmostEqual, 0.5, tolerance)
			So(measurement.Draw, ShouldEqual, 0.3)

			Settle(e, nil)
			So(e.State(), ShouldResemble, m.Zero())
		})

		Convey("A draw of 0.7 collapses to exactly |1⟩", func() {
			src.Draws = []float64{0.7}

			measurement, ok := e.Measure()
			So(ok, ShouldBeTrue)
			So(measurement.Basis, ShouldEqual, 1)

			Settle(e, nil)
			So(e.State(), ShouldResemble, m.One())
			So(e.LastOperation(), ShouldEqual, m.OperationMeasure)
		})
	})

	Convey("Given an engine with a logger", t, func() {
		var buf bytes.Buffer
		logger := log.New(&buf)
		e := NewEngine(WithLogger(logger), WithRandomSource(&FixedSource{Draws: []float64{0.1}}))

		Convey("Measurements are logged", func() {
			e.Measure()
			So(buf.String(), ShouldContainSubstring, "measured")
		})
	})

	Convey("Given an engine started from a custom state", t, func() {
		e := NewEngine(WithInitialState(m.One()))

		Convey("The snapshot reflects it", func() {
			So(e.Snapshot().Bloch.Z, ShouldAlmostEqual, -1, tolerance)
		})
	})

	Convey("Given an unnormalized initial state", t, func() {
		e := NewEngine(WithInitialState(m.State{Alpha: m.C(3, 0), Beta: m.C(0, 4)}))

		Convey("It is normalized before the first snapshot", func() {
			frame := e.Snapshot()

			So(frame.State.Norm(), ShouldAlmostEqual, 1, 1e-12)
			So(frame.Probabilities.P0, ShouldAlmostEqual, 0.36, tolerance)
			So(frame.Probabilities.P1, ShouldAlmostEqual, 0.64, tolerance)
		})
	})

	Convey("Given an initial state that cannot be normalized", t, func() {
		Convey("The zero vector keeps |0⟩", func() {
			e := NewEngine(WithInitialState(m.State{}))
			So(e.State(), ShouldResemble, m.Zero())
		})

		Convey("A NaN amplitude keeps |0⟩", func() {
			e := NewEngine(WithInitialState(m.State{Alpha: m.C(math.NaN(), 0), Beta: m.C(1, 0)}))
			So(e.State(), ShouldResemble, m.Zero())
		})
	})
}
