package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
)

// preparation describes how a headless command builds its state: an optional
// starting state followed by gates applied in order.
type preparation struct {
	custom string
	random bool
	gates  []m.GateName
}

func parseGates(args []string) ([]m.GateName, error) {
	gates := make([]m.GateName, 0, len(args))

	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			name := m.GateName(strings.ToUpper(strings.TrimSpace(field)))
			if name == "" {
				continue
			}

			if _, ok := domain.LookupGate(name); !ok {
				return nil, fmt.Errorf("unknown gate %q (want one of %s)", field, gateList())
			}

			gates = append(gates, name)
		}
	}

	return gates, nil
}

func gateList() string {
	names := make([]string, 0, 6)
	for _, gate := range domain.Gates() {
		names = append(names, string(gate.Name))
	}

	return strings.Join(names, ", ")
}

// parseCustom reads "aRe,aIm,bRe,bIm".
func parseCustom(value string) (m.Complex, m.Complex, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return m.Complex{}, m.Complex{}, fmt.Errorf("custom state %q: want aRe,aIm,bRe,bIm", value)
	}

	var v [4]float64

	for i, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return m.Complex{}, m.Complex{}, fmt.Errorf("custom state %q: %w", value, err)
		}

		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return m.Complex{}, m.Complex{}, fmt.Errorf("custom state %q: %q is not a finite number", value, strings.TrimSpace(part))
		}

		v[i] = parsed
	}

	return m.C(v[0], v[1]), m.C(v[2], v[3]), nil
}

// run drives engine through the preparation, settling after every request and
// handing each produced frame to onFrame. It returns the frame at rest.
func (p preparation) run(engine domain.Engine, onFrame func(m.Frame)) (m.Frame, error) {
	switch {
	case p.custom != "":
		alpha, beta, err := parseCustom(p.custom)
		if err != nil {
			return m.Frame{}, err
		}

		if _, err := engine.SetCustomState(alpha, beta); err != nil {
			return m.Frame{}, fmt.Errorf("set custom state: %w", err)
		}

		domain.Settle(engine, onFrame)

	case p.random:
		engine.Randomize()
		domain.Settle(engine, onFrame)
	}

	for _, gate := range p.gates {
		if !engine.ApplyGate(gate) {
			return m.Frame{}, fmt.Errorf("gate %s was not accepted", gate)
		}

		domain.Settle(engine, onFrame)
	}

	return engine.Snapshot(), nil
}
