package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnyst/learnyst/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and Learnyst styling.
type TextInput struct {
	Label string
	Model textinput.Model
}

// NewTextInput creates a labeled single-line input. It starts blurred.
func NewTextInput(label, placeholder string, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if width > 0 {
		ti.SetWidth(width)
	}
	return TextInput{Label: label, Model: ti}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label above a bordered input.
func (t TextInput) View() string {
	return renderField(t.Label, t.Model.View(), t.Focused())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input text.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

func renderField(label, body string, focused bool) string {
	box := theme.Card
	if focused {
		box = theme.FocusedCard
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Label.Render(label),
		box.Render(body),
	)
}
