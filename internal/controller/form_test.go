package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/bloch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCustomForm_OpenSeedsBasisState(t *testing.T) {
	form := newCustomForm()
	form.inputs[2].SetValue("9")

	form, _ = form.open()

	assert.Equal(t, 0, form.focused)
	assert.True(t, form.inputs[0].Focused())
	assert.Equal(t, "1", form.inputs[0].Value())
	assert.Empty(t, form.inputs[2].Value())

	alpha, beta := form.amplitudes()
	assert.Equal(t, m.C(1, 0), alpha)
	assert.Equal(t, m.C(0, 0), beta)
}

func TestCustomForm_TabCyclesFields(t *testing.T) {
	form, _ := newCustomForm().open()

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, form.focused)
	assert.False(t, form.inputs[0].Focused())
	assert.True(t, form.inputs[1].Focused())

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 3, form.focused)

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, form.focused)
}

func TestCustomForm_TypingAndSanitizing(t *testing.T) {
	form, _ := newCustomForm().open()

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyTab})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0.5")})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyTab})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("oops")})

	assert.Equal(t, "0.5", form.inputs[1].Value())

	alpha, beta := form.amplitudes()
	assert.Equal(t, m.C(1, 0.5), alpha)
	assert.Equal(t, m.C(0, 0), beta)
}

func TestCustomForm_View(t *testing.T) {
	form, _ := newCustomForm().open()
	view := form.view()

	for _, label := range formLabels {
		assert.Contains(t, view, label)
	}

	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "enter apply")
}
