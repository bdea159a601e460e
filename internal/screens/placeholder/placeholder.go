package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnyst/learnyst/internal/screen"
	"github.com/learnyst/learnyst/internal/ui/layout"
	"github.com/learnyst/learnyst/internal/ui/theme"
)

// PlaceholderScreen stands in for a route that is not built yet.
type PlaceholderScreen struct {
	title string
	route string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen for the given route.
func New(title, route string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, route: route}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (p *PlaceholderScreen) View(width, height int) string {
	route := lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.route)
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render("╌╌ Coming Soon ╌╌\n\n" + route + "\n\nThe learning hub for this subject is being built.\nCheck back later!")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

// Route returns the route this screen stands in for.
func (p *PlaceholderScreen) Route() string {
	return p.route
}
