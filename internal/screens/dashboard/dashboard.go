package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/learnyst/learnyst/internal/creation"
	"github.com/learnyst/learnyst/internal/router"
	"github.com/learnyst/learnyst/internal/screen"
	"github.com/learnyst/learnyst/internal/screens/create"
	"github.com/learnyst/learnyst/internal/screens/placeholder"
	"github.com/learnyst/learnyst/internal/subject"
	"github.com/learnyst/learnyst/internal/ui/components"
	"github.com/learnyst/learnyst/internal/ui/effects"
	"github.com/learnyst/learnyst/internal/ui/layout"
	"github.com/learnyst/learnyst/internal/ui/theme"
)

const (
	tickInterval = 120 * time.Millisecond
	rowHeight    = 2
	maxWidth     = 96
)

// The stat cards appear first, then the action, then the list.
var reveal = effects.Reveal{Stages: 3, Stagger: 240 * time.Millisecond}

// DashboardScreen shows aggregate statistics and the subject list.
// Row 0 is the add action; subjects follow.
type DashboardScreen struct {
	store    *subject.Store
	creator  *creation.Creator
	subjects []subject.Subject
	agg      subject.Aggregate
	notice   string
	cursor   int
	offset   int
	clock    effects.Clock
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard over store. New subjects are created through
// creator.
func New(store *subject.Store, creator *creation.Creator) *DashboardScreen {
	d := &DashboardScreen{
		store:   store,
		creator: creator,
		clock:   effects.NewClock(tickInterval, reveal.Duration()),
	}
	d.refresh()
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.clock.Tick()
}

func (d *DashboardScreen) Title() string {
	return "Learning Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "n", Description: "New subject"},
	}
	if d.notice != "" {
		hints = append(hints, layout.KeyHint{Key: "x", Description: "Dismiss"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// refresh reloads subjects, statistics and the notice.
func (d *DashboardScreen) refresh() {
	d.subjects = d.store.Subjects()
	d.agg = subject.ComputeAggregate(d.subjects)
	d.notice = d.creator.Snapshot().Notice
	if d.cursor > len(d.subjects) {
		d.cursor = len(d.subjects)
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if clock, cmd, ok := d.clock.Update(msg); ok {
		d.clock = clock
		return d, cmd
	}

	switch msg := msg.(type) {
	case screen.ResumeMsg:
		d.refresh()
		return d, d.clock.Restart()

	case tea.KeyPressMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.subjects) {
			d.cursor++
		}
	case "n", "a":
		return d, d.openCreate()
	case "x":
		d.creator.DismissNotice()
		d.notice = ""
	case "enter":
		if d.cursor == 0 {
			return d, d.openCreate()
		}
		return d, d.openSubject(d.subjects[d.cursor-1])
	}
	return d, nil
}

func (d *DashboardScreen) openCreate() tea.Cmd {
	dialog := create.New(d.creator)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: dialog}
	}
}

func (d *DashboardScreen) openSubject(s subject.Subject) tea.Cmd {
	hub := placeholder.New(s.Name, subject.DetailRoute(s.ID))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: hub}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	w := min(width-4, maxWidth)
	elapsed := d.clock.Elapsed()
	compact := layout.IsCompactHeight(height)

	var top []string
	if !compact {
		top = append(top, theme.Hint.Render("Track your progress and continue your learning journey."))
	}
	if d.notice != "" {
		sparkle := effects.Sparkle.Frame(d.clock.Ticks())
		top = append(top, theme.Notice.Render(sparkle+" "+d.notice))
	}
	if reveal.Shown(0, elapsed) {
		top = append(top, d.renderStats(w))
	}
	if reveal.Shown(1, elapsed) {
		top = append(top, d.renderAction(compact))
	}
	header := lipgloss.JoinVertical(lipgloss.Left, top...)

	body := ""
	if reveal.Shown(2, elapsed) {
		listHeight := height - lipgloss.Height(header) - 1
		body = d.renderList(w, listHeight)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (d *DashboardScreen) renderStats(width int) string {
	cardWidth := (width - 2) / 3
	stacked := layout.IsCompactWidth(width)
	cards := []string{
		statCard("Total Subjects", fmt.Sprintf("%d", d.agg.Count), "", cardWidth, stacked),
		statCard("Average Progress", fmt.Sprintf("%d%%", d.agg.AverageProgress), "", cardWidth, stacked),
		statCard("Topics Completed", fmt.Sprintf("%d", d.agg.CompletedTopics),
			fmt.Sprintf("of %d total topics", d.agg.TotalTopics), cardWidth, stacked),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// statCard renders one summary card. Stacked cards put the caption on its
// own line so narrow cards don't wrap mid-phrase.
func statCard(label, value, sub string, width int, stacked bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	line := valueStyle.Render(value)
	switch {
	case stacked:
		line += "\n" + subStyle.Render(sub)
	case sub != "":
		line += " " + subStyle.Render(sub)
	}

	body := labelStyle.Render(label) + "\n" + line
	return theme.Card.Width(width).Render(body)
}

func (d *DashboardScreen) renderAction(compact bool) string {
	label := "Add New Subject"
	if len(d.subjects) == 0 {
		label = "Create First Subject"
	}
	btn := components.NewButton("+ "+label, d.cursor == 0, nil)
	if compact {
		return btn.View()
	}
	return "\n" + btn.View()
}

func (d *DashboardScreen) renderList(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your Subjects")

	if len(d.subjects) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("No subjects yet"),
			theme.Hint.Render("Create your first subject to start your AI-powered learning journey."),
		)
		return title + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, empty)
	}

	visible := (height - 1) / rowHeight
	if visible < 1 {
		visible = 1
	}
	d.scrollTo(visible)

	end := min(d.offset+visible, len(d.subjects))
	rows := make([]string, 0, end-d.offset)
	for i := d.offset; i < end; i++ {
		rows = append(rows, renderRow(d.subjects[i], d.cursor == i+1, width))
	}

	more := ""
	if end < len(d.subjects) {
		more = theme.Hint.Render(fmt.Sprintf("  … %d more", len(d.subjects)-end))
	}
	return title + "\n" + strings.Join(rows, "\n") + more
}

// scrollTo keeps the selected subject inside a window of n rows.
func (d *DashboardScreen) scrollTo(n int) {
	idx := d.cursor - 1
	if idx < 0 {
		idx = 0
	}
	if idx < d.offset {
		d.offset = idx
	}
	if idx >= d.offset+n {
		d.offset = idx - n + 1
	}
	if d.offset > len(d.subjects)-n && len(d.subjects) >= n {
		d.offset = len(d.subjects) - n
	}
}

func renderRow(s subject.Subject, selected bool, width int) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		cursor = theme.Selected.Render("▸ ")
		nameStyle = theme.Selected
	}

	topics := fmt.Sprintf("%d of %d topics", s.CompletedTopics, s.TotalTopics)
	if s.IsComplete() {
		topics += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	topics = lipgloss.NewStyle().Foreground(theme.TextDim).Render(topics)

	nameWidth := width - 2 - lipgloss.Width(topics) - 2
	name := s.Name
	if nameWidth > 1 {
		name = ansi.Truncate(name, nameWidth, "…")
	}
	gap := width - 2 - lipgloss.Width(name) - lipgloss.Width(topics)
	if gap < 1 {
		gap = 1
	}

	line := cursor + nameStyle.Render(name) + strings.Repeat(" ", gap) + topics
	bar := "  " + components.PercentBar(s.Progress, width-2).View()
	return line + "\n" + bar
}
