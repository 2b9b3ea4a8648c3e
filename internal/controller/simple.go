package controller

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text on the command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Interactive reads one request per line from the command's input until EOF
// or "quit", printing the state each request settles into.
func (s *SimpleUI) Interactive(engine domain.Engine, _ ...SessionOption) error {
	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := s.handleLine(engine, line)
		if err != nil {
			s.errorf("%v\n", err)
		}

		if quit {
			return nil
		}
	}

	return scanner.Err()
}

//nolint:cyclop // one case per request kind
func (s *SimpleUI) handleLine(engine domain.Engine, line string) (bool, error) {
	fields := strings.Fields(line)
	word := strings.ToLower(fields[0])

	if gate, ok := domain.LookupGate(m.GateName(strings.ToUpper(word))); ok && len(fields) == 1 {
		engine.ApplyGate(gate.Name)
		return false, s.settle(engine)
	}

	switch word {
	case "quit", "exit":
		return true, nil

	case "state":
		return false, s.DisplayFrame(engine.Snapshot())

	case "reset":
		engine.Reset()
		return false, s.settle(engine)

	case "random":
		engine.Randomize()
		return false, s.settle(engine)

	case "measure":
		measurement, ok := engine.Measure()
		if ok {
			if err := s.DisplayMeasurement(measurement); err != nil {
				return false, err
			}
		}

		return false, s.settle(engine)

	case "custom":
		var v [4]float64
		for i := range v {
			if i+1 < len(fields) {
				v[i] = parseAmplitude(fields[i+1])
			}
		}

		if _, err := engine.SetCustomState(m.C(v[0], v[1]), m.C(v[2], v[3])); err != nil {
			return false, fmt.Errorf("custom state: %w", err)
		}

		return false, s.settle(engine)
	}

	return false, fmt.Errorf("unknown command %q (gates X Y Z H S T, reset, custom, random, measure, state, quit)", fields[0])
}

func (s *SimpleUI) settle(engine domain.Engine) error {
	return s.DisplayFrame(domain.Settle(engine, nil))
}

// DisplayFrame prints the state as a two-column table.
func (s *SimpleUI) DisplayFrame(frame m.Frame) error {
	rows := [][]string{
		{"State", FormatState(frame.State)},
		{"P(|0⟩)", FormatPercent(frame.Probabilities.P0)},
		{"P(|1⟩)", FormatPercent(frame.Probabilities.P1)},
		{"Bloch", FormatBloch(frame.Bloch)},
		{"Last gate", FormatOperation(frame.Operation)},
	}

	if frame.Steps > 0 {
		rows = append(rows, []string{"Step", fmt.Sprintf("%d/%d", frame.Step, frame.Steps)})
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(rows)
	table.Render()

	s.printf("%s\n", tableBuffer.String())

	return nil
}

// DisplayMeasurement prints the collapse announcement.
func (s *SimpleUI) DisplayMeasurement(measurement m.Measurement) error {
	s.printf("%s\n", FormatMeasurement(measurement))

	return nil
}

// DisplayShots prints a table of observed and expected counts per basis state.
func (s *SimpleUI) DisplayShots(summary m.ShotSummary) error {
	if summary.Shots <= 0 {
		return errors.New("no shots to display")
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Count", "Observed", "Expected"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for basis := range 2 {
		table.Append([]string{
			fmt.Sprintf("|%d⟩", basis),
			fmt.Sprintf("%d", summary.Counts[basis]),
			FormatPercent(summary.Observed(basis)),
			FormatPercent(summary.Expected.Of(basis)),
		})
	}

	table.SetFooter([]string{"Shots", fmt.Sprintf("%d", summary.Shots), "", ""})
	table.Render()

	s.printf("%s\n%s", FormatState(summary.Prepared), tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
