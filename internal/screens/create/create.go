package create

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnyst/learnyst/internal/creation"
	"github.com/learnyst/learnyst/internal/router"
	"github.com/learnyst/learnyst/internal/screen"
	"github.com/learnyst/learnyst/internal/ui/components"
	"github.com/learnyst/learnyst/internal/ui/layout"
	"github.com/learnyst/learnyst/internal/ui/theme"
)

const (
	submitLabel     = "Generate Learning Path"
	generatingLabel = "Creating learning structure..."
	waitingHint     = "Finishing the previous request..."
	dialogWidth     = 64
)

type focus int

const (
	focusName focus = iota
	focusSyllabus
	focusSubmit
	focusCount
)

// CreateScreen is the "Create Learning Path" dialog. It collects a subject
// name and syllabus and runs the creation workflow in the background.
type CreateScreen struct {
	creator  *creation.Creator
	name     components.TextInput
	syllabus components.TextArea
	spinner  spinner.Model
	focus    focus
	running  bool

	// waiting is set when a submit found an earlier dialog's request
	// still unwinding; the submit is repeated when that request reports.
	waiting bool
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)
var _ screen.Closer = (*CreateScreen)(nil)

// New creates the dialog. Text retained by the workflow from an earlier
// failed or cancelled attempt is restored.
func New(creator *creation.Creator) *CreateScreen {
	s := &CreateScreen{
		creator:  creator,
		name:     components.NewTextInput("Subject Name", "e.g., Advanced Machine Learning", dialogWidth-6),
		syllabus: components.NewTextArea("Syllabus Content", "Paste your syllabus content here...", dialogWidth-6, 6),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}

	form := creator.Snapshot().Form
	s.name.SetValue(form.Name)
	s.syllabus.SetValue(form.Syllabus)
	return s
}

func (s *CreateScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

func (s *CreateScreen) Title() string {
	return "Create Learning Path"
}

func (s *CreateScreen) KeyHints() []layout.KeyHint {
	if s.running {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Generate"},
		{Key: "Esc", Description: "Close"},
	}
}

// Close cancels an in-flight generation when the dialog is dismissed.
func (s *CreateScreen) Close() {
	if s.running {
		s.creator.Cancel()
	}
}

func (s *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generationDoneMsg:
		return s.handleDone(msg)

	case spinner.TickMsg:
		if !s.running {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, s.forward(msg)
}

func (s *CreateScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Input is locked while the request is in flight.
	if s.running {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return s.submit()
	case "enter":
		switch s.focus {
		case focusName:
			return s, s.setFocus(focusSyllabus)
		case focusSubmit:
			btn := s.submitButton(s.creator.Snapshot())
			_, cmd := btn.Update(msg)
			return s, cmd
		}
	}

	cmd := s.forward(msg)
	s.creator.Edit(s.form())
	return s, cmd
}

// forward passes msg to the focused field.
func (s *CreateScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
	case focusSyllabus:
		s.syllabus, cmd = s.syllabus.Update(msg)
	}
	return cmd
}

func (s *CreateScreen) setFocus(f focus) tea.Cmd {
	s.focus = f
	s.name.Blur()
	s.syllabus.Blur()
	switch f {
	case focusName:
		return s.name.Focus()
	case focusSyllabus:
		return s.syllabus.Focus()
	}
	return nil
}

func (s *CreateScreen) form() creation.Form {
	return creation.Form{
		Name:     s.name.Value(),
		Syllabus: s.syllabus.Value(),
	}
}

// submit validates the form and starts the request.
func (s *CreateScreen) submit() (screen.Screen, tea.Cmd) {
	if err := s.creator.Submit(s.form()); err != nil {
		// The workflow records validation messages; the view reads them back.
		s.waiting = errors.Is(err, creation.ErrBusy)
		return s, nil
	}

	s.waiting = false
	s.running = true
	s.name.Blur()
	s.syllabus.Blur()
	return s, tea.Batch(s.spinner.Tick, s.generate())
}

// generate runs the workflow asynchronously.
func (s *CreateScreen) generate() tea.Cmd {
	creator := s.creator
	return func() tea.Msg {
		subj, err := creator.Run(context.Background())
		return generationDoneMsg{owner: s, Subject: subj, Err: err}
	}
}

func (s *CreateScreen) handleDone(msg generationDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.owner != s {
		if s.waiting && !s.running {
			return s.submit()
		}
		return s, nil
	}
	s.running = false

	if msg.Err == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if errors.Is(msg.Err, context.Canceled) {
		return s, nil
	}
	return s, s.setFocus(s.focus)
}

func (s *CreateScreen) View(width, height int) string {
	snap := s.creator.Snapshot()
	w := min(dialogWidth, width-4)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Create Learning Path"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Add a subject and its syllabus to generate a structured path."))
	b.WriteString("\n\n")

	b.WriteString(s.name.View())
	b.WriteString("\n")
	b.WriteString(s.syllabus.View())
	b.WriteString("\n")

	switch {
	case s.waiting:
		b.WriteString(theme.Hint.Render(waitingHint))
	case snap.Error != "":
		b.WriteString(theme.ErrorText.Render(snap.Error))
	}
	b.WriteString("\n")

	b.WriteString(s.renderSubmit(snap))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 2).
		Width(w).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}

// submitButton is enabled only when both fields are filled in.
func (s *CreateScreen) submitButton(snap creation.Snapshot) components.Button {
	return components.NewButton(submitLabel, snap.CanSubmit(), func() tea.Cmd {
		_, cmd := s.submit()
		return cmd
	})
}

func (s *CreateScreen) renderSubmit(snap creation.Snapshot) string {
	if s.running || snap.Phase == creation.PhaseGenerating {
		return theme.ButtonInactive.Render(s.spinner.View() + " " + generatingLabel)
	}

	cursor := "  "
	if s.focus == focusSubmit {
		cursor = theme.Selected.Render("› ")
	}
	return cursor + s.submitButton(snap).View()
}
