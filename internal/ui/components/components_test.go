package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBarWidth(t *testing.T) {
	for _, pct := range []int{0, 65, 89, 100} {
		bar := PercentBar(pct, 40).View()
		assert.Equal(t, 40, lipgloss.Width(bar), "percent %d", pct)
	}
}

func TestProgressBarShowsPercent(t *testing.T) {
	assert.Contains(t, PercentBar(65, 40).View(), "65%")
	assert.Contains(t, PercentBar(100, 40).View(), "100%")
	assert.NotContains(t, NewProgressBar("", 0.5, false, 20).View(), "%")
}

func TestProgressBarClamps(t *testing.T) {
	over := NewProgressBar("", 1.5, false, 20).View()
	under := NewProgressBar("", -1, false, 20).View()
	assert.Equal(t, 20, lipgloss.Width(over))
	assert.Equal(t, 20, lipgloss.Width(under))
}

func TestButtonInactiveIgnoresEnter(t *testing.T) {
	pressed := false
	b := NewButton("Go", false, func() tea.Cmd {
		pressed = true
		return nil
	})

	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, pressed)

	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, pressed)
}

func TestMenuSkipsDisabled(t *testing.T) {
	var chosen string
	pick := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Start", Action: pick("start")},
		{Label: "Hidden", Disabled: true},
		{Label: "Quit", Action: pick("quit")},
	})
	require.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "start", chosen)
	assert.Contains(t, m.View(), "▸ Start")
}

func TestTextInputFocus(t *testing.T) {
	in := NewTextInput("Subject Name", "e.g. Biology", 30)
	assert.False(t, in.Focused())

	in.Focus()
	in, _ = in.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Equal(t, "a", in.Value())
	assert.Contains(t, in.View(), "Subject Name")

	in.Blur()
	in, _ = in.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Equal(t, "a", in.Value(), "blurred input ignores keys")
}

func TestTextAreaMultiline(t *testing.T) {
	ta := NewTextArea("Syllabus Content", "", 40, 5)
	ta.Focus()
	ta.SetValue("cells\ngenetics")
	assert.Equal(t, "cells\ngenetics", ta.Value())
	assert.Contains(t, ta.View(), "Syllabus Content")
}
