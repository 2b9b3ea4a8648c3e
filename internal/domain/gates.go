package domain

import (
	"math"

	m "github.com/mouse-blink/bloch/internal/model"
)

var invSqrt2 = 1 / math.Sqrt(2)

// gateOrder fixes the order in which gates are listed to users.
var gateOrder = []m.GateName{m.GateX, m.GateY, m.GateZ, m.GateH, m.GateS, m.GateT}

var gateTable = map[m.GateName]m.Gate{
	m.GateX: {Name: m.GateX, Matrix: [2][2]m.Complex{
		{m.C(0, 0), m.C(1, 0)},
		{m.C(1, 0), m.C(0, 0)},
	}},
	m.GateY: {Name: m.GateY, Matrix: [2][2]m.Complex{
		{m.C(0, 0), m.C(0, -1)},
		{m.C(0, 1), m.C(0, 0)},
	}},
	m.GateZ: {Name: m.GateZ, Matrix: [2][2]m.Complex{
		{m.C(1, 0), m.C(0, 0)},
		{m.C(0, 0), m.C(-1, 0)},
	}},
	m.GateH: {Name: m.GateH, Matrix: [2][2]m.Complex{
		{m.C(invSqrt2, 0), m.C(invSqrt2, 0)},
		{m.C(invSqrt2, 0), m.C(-invSqrt2, 0)},
	}},
	m.GateS: {Name: m.GateS, Matrix: [2][2]m.Complex{
		{m.C(1, 0), m.C(0, 0)},
		{m.C(0, 0), m.C(0, 1)},
	}},
	m.GateT: {Name: m.GateT, Matrix: [2][2]m.Complex{
		{m.C(1, 0), m.C(0, 0)},
		{m.C(0, 0), m.C(math.Cos(math.Pi/4), math.Sin(math.Pi/4))},
	}},
}

// LookupGate returns the gate registered under name.
func LookupGate(name m.GateName) (m.Gate, bool) {
	g, ok := gateTable[name]

	return g, ok
}

// Gates returns every supported gate in display order.
func Gates() []m.Gate {
	gates := make([]m.Gate, 0, len(gateOrder))
	for _, name := range gateOrder {
		gates = append(gates, gateTable[name])
	}

	return gates
}
