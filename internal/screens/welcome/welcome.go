package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnyst/learnyst/internal/router"
	"github.com/learnyst/learnyst/internal/screen"
	"github.com/learnyst/learnyst/internal/ui/components"
	"github.com/learnyst/learnyst/internal/ui/effects"
	"github.com/learnyst/learnyst/internal/ui/layout"
	"github.com/learnyst/learnyst/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

// Reveal stages, in order.
const (
	stageBadge = iota
	stageBanner
	stageHeadline
	stageTagline
	stageSteps
	stageActions
	stageCount
)

var reveal = effects.Reveal{Stages: stageCount, Stagger: 300 * time.Millisecond}

type step struct {
	num   string
	title string
	desc  string
}

var steps = []step{
	{"01", "Upload Syllabus", "Paste your course syllabus and let the AI get to work."},
	{"02", "Generate Path", "Learnyst structures the content into a learning pathway."},
	{"03", "Learn & Excel", "Work through the topics and track your mastery."},
}

// WelcomeScreen is the landing page. It reveals its sections in stages
// and then offers to open the dashboard.
type WelcomeScreen struct {
	dashboardFactory func() screen.Screen
	clock            effects.Clock
	menu             components.Menu
	transitioned     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by dashboardFactory.
func New(dashboardFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		dashboardFactory: dashboardFactory,
		clock:            effects.NewClock(tickInterval, reveal.Duration()),
	}
	w.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Learning Now", Action: w.transition},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.clock.Tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if clock, cmd, ok := w.clock.Update(msg); ok {
		w.clock = clock
		return w, cmd
	}

	if _, ok := msg.(tea.KeyPressMsg); ok {
		// The first key during the reveal only completes it.
		if !w.clock.Done() {
			w.clock.Finish()
			return w, nil
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	dashboard := w.dashboardFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: dashboard}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	elapsed := w.clock.Elapsed()
	var sections []string

	if reveal.Shown(stageBadge, elapsed) {
		sparkle := lipgloss.NewStyle().Foreground(theme.Primary).
			Render(effects.Sparkle.Frame(w.clock.Ticks()))
		badge := lipgloss.NewStyle().
			Foreground(theme.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 2).
			Render(sparkle + " The Future of Learning is Here")
		sections = append(sections, badge)
	}

	if reveal.Shown(stageBanner, elapsed) {
		sections = append(sections, RenderBanner(width, height))
	}

	if reveal.Shown(stageHeadline, elapsed) {
		headline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Learn Smarter, Not Harder with ") +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render("Learnyst AI")
		sections = append(sections, "", headline)
	}

	if reveal.Shown(stageTagline, elapsed) {
		tagline := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-4, 70)).
			Align(lipgloss.Center).
			Render("Transform any syllabus into a dynamic learning path and master subjects with precision.")
		sections = append(sections, tagline)
	}

	if reveal.Shown(stageSteps, elapsed) {
		sections = append(sections, "", renderSteps(width, layout.IsCompactHeight(height)))
	}

	if reveal.Shown(stageActions, elapsed) {
		sections = append(sections, "", w.menu.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderSteps lays the three steps out side by side. Descriptions are
// dropped on short terminals.
func renderSteps(width int, compact bool) string {
	cardWidth := (width - 12) / len(steps)
	if cardWidth > 30 {
		cardWidth = 30
	}

	numStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	cards := make([]string, 0, len(steps))
	for _, s := range steps {
		lines := []string{numStyle.Render(s.num) + " " + titleStyle.Render(s.title)}
		if !compact {
			lines = append(lines, descStyle.Width(cardWidth-4).Render(s.desc))
		}
		body := strings.Join(lines, "\n")
		cards = append(cards, theme.Card.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
