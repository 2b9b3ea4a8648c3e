package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/bloch/internal/adapter"
	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
)

type tickMsg time.Time

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	options []tea.ProgramOption
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Interactive runs the Bloch sphere viewer until the user quits.
func (t *TUI) Interactive(engine domain.Engine, options ...SessionOption) error {
	model := newViewerModel(engine, newSessionConfig(options...))

	if width, height, ok := adapter.TerminalSize(t.output); ok {
		model.width, model.height = width, height
	}

	return t.run(model)
}

func (t *TUI) run(model tea.Model) error {
	opts := []tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}

	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	opts = append(opts, t.options...)

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	return nil
}

// DisplayFrame prints the sphere and state panel once.
func (t *TUI) DisplayFrame(frame m.Frame) error {
	view := newFrameView(frame, newSessionConfig())
	_, err := fmt.Fprintln(t.output, view.View())

	return err
}

// DisplayMeasurement prints the collapse announcement.
func (t *TUI) DisplayMeasurement(measurement m.Measurement) error {
	_, err := fmt.Fprintln(t.output, alertStyle.Render(FormatMeasurement(measurement)))

	return err
}

// DisplayShots prints observed against expected outcome frequencies as bars.
func (t *TUI) DisplayShots(summary m.ShotSummary) error {
	view := newFrameView(m.Frame{}, newSessionConfig())

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%d shots", summary.Shots)) + "\n")
	sb.WriteString(accentStyle.Render(FormatState(summary.Prepared)) + "\n\n")

	for basis := range 2 {
		observed := summary.Observed(basis)
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			labelStyle.Width(5).Render(fmt.Sprintf("|%d⟩", basis)),
			view.bars[basis].ViewAs(observed),
			valueStyle.Render(fmt.Sprintf("%6d  %6s", summary.Counts[basis], FormatPercent(observed))),
			helpStyle.Render("expected "+FormatPercent(summary.Expected.Of(basis))),
		))
	}

	_, err := fmt.Fprint(t.output, lipgloss.NewStyle().Padding(1, 2).Render(sb.String())+"\n")

	return err
}
