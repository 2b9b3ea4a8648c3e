package model

// GateName identifies one of the fixed single-qubit gates.
type GateName string

const (
	// GateX is the Pauli X bit flip.
	GateX GateName = "X"
	// GateY is the Pauli Y bit and phase flip.
	GateY GateName = "Y"
	// GateZ is the Pauli Z phase flip.
	GateZ GateName = "Z"
	// GateH is the Hadamard gate.
	GateH GateName = "H"
	// GateS is the quarter-turn phase gate.
	GateS GateName = "S"
	// GateT is the eighth-turn phase gate.
	GateT GateName = "T"
)

// Gate is a 2×2 complex matrix acting on a qubit state.
type Gate struct {
	Name   GateName
	Matrix [2][2]Complex
}

// Dagger returns the conjugate transpose of the gate.
func (g Gate) Dagger() Gate {
	var d Gate

	d.Name = g.Name + "†"

	for i := range 2 {
		for j := range 2 {
			d.Matrix[i][j] = g.Matrix[j][i].Conj()
		}
	}

	return d
}
