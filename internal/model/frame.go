package model

// Operation labels the request that produced the current state.
type Operation string

// Operations other than gate names.
const (
	OperationNone    Operation = ""
	OperationReset   Operation = "Reset"
	OperationCustom  Operation = "Custom"
	OperationRandom  Operation = "Random"
	OperationMeasure Operation = "Measure"
)

// GateOperation returns the operation label for a gate.
func GateOperation(name GateName) Operation {
	return Operation(name)
}

// Frame is what the presentation draws: the state together with its derived views.
// Step and Steps locate the frame inside a transition; both are zero at rest.
type Frame struct {
	State         State
	Bloch         BlochVector
	Probabilities Probabilities
	Operation     Operation
	Step          int
	Steps         int
}

// Animating reports whether the frame is an intermediate transition sample.
func (f Frame) Animating() bool {
	return f.Steps > 0 && f.Step < f.Steps
}

// Measurement is emitted when a state collapses.
type Measurement struct {
	Basis       int     // 0 or 1
	Probability float64 // probability of Basis at measurement time
	Draw        float64 // the uniform value that decided the outcome
}

// ShotSummary aggregates repeated measurements of one prepared state.
type ShotSummary struct {
	Prepared State
	Expected Probabilities
	Shots    int
	Counts   [2]int
}

// Observed returns the observed frequency of a basis index.
func (s ShotSummary) Observed(basis int) float64 {
	if s.Shots == 0 {
		return 0
	}

	return float64(s.Counts[basis]) / float64(s.Shots)
}
