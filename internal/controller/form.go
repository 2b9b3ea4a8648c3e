package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/bloch/internal/model"
)

var formLabels = [4]string{"α real", "α imag", "β real", "β imag"}

var formStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("205")).
	Padding(0, 1)

// customForm collects the four raw components of a custom state.
type customForm struct {
	inputs  [4]textinput.Model
	focused int
}

func newCustomForm() customForm {
	var f customForm

	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "0"
		in.CharLimit = 24
		in.Width = 12
		f.inputs[i] = in
	}

	return f
}

// open clears every field, seeds |0⟩ so submitting immediately is valid and
// focuses the first field.
func (f customForm) open() (customForm, tea.Cmd) {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}

	f.inputs[0].SetValue("1")
	f.focused = 0
	cmd := f.inputs[0].Focus()

	return f, cmd
}

func (f customForm) update(msg tea.KeyMsg) (customForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return f.move(1)
	case "shift+tab", "up":
		return f.move(-1)
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)

	return f, cmd
}

func (f customForm) move(delta int) (customForm, tea.Cmd) {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + len(f.inputs)) % len(f.inputs)
	cmd := f.inputs[f.focused].Focus()

	return f, cmd
}

// amplitudes reads the raw pair; malformed fields count as 0.
func (f customForm) amplitudes() (m.Complex, m.Complex) {
	v := [4]float64{}
	for i := range f.inputs {
		v[i] = parseAmplitude(f.inputs[i].Value())
	}

	return m.C(v[0], v[1]), m.C(v[2], v[3])
}

func (f customForm) view() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Custom state") + "\n")

	for i, in := range f.inputs {
		marker := "  "
		if i == f.focused {
			marker = "> "
		}

		sb.WriteString(marker + labelStyle.Render(formLabels[i]) + in.View() + "\n")
	}

	sb.WriteString(helpStyle.Render("tab next • enter apply • esc cancel"))

	return formStyle.Render(sb.String())
}
