package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnyst/learnyst/internal/router"
	"github.com/learnyst/learnyst/internal/screen"
	"github.com/learnyst/learnyst/internal/ui/effects"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "dashboard" }
func (s *stubScreen) Title() string                           { return "Learning Dashboard" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(effects.TickMsg{ID: w.clock.ID()})
	}
}

func enter() tea.Msg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestStagedReveal(t *testing.T) {
	w, _ := newTestWelcome()

	view := w.View(100, 40)
	assert.Contains(t, view, "The Future of Learning is Here")
	assert.NotContains(t, view, "Learn Smarter")

	// 300ms per stage at 100ms per tick.
	sendTicks(w, 6)
	view = w.View(100, 40)
	assert.Contains(t, view, "Learn Smarter, Not Harder with")
	assert.NotContains(t, view, "Upload Syllabus")

	sendTicks(w, 9)
	view = w.View(100, 40)
	for _, s := range []string{"Upload Syllabus", "Generate Path", "Learn & Excel", "Start Learning Now"} {
		assert.Contains(t, view, s)
	}
}

func TestForeignTicksIgnored(t *testing.T) {
	w, _ := newTestWelcome()
	other := effects.NewClock(tickInterval, 0)

	_, cmd := w.Update(effects.TickMsg{ID: other.ID()})
	assert.Nil(t, cmd)
	assert.Zero(t, w.clock.Ticks())
}

func TestKeypressDuringRevealFinishesIt(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	assert.Nil(t, cmd)
	assert.True(t, w.clock.Done())
	assert.Contains(t, w.View(100, 40), "Start Learning Now")
	assert.Zero(t, *callCount)
}

func TestStartEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcome()
	w.clock.Finish()

	_, cmd := w.Update(enter())
	require.NotNil(t, cmd)

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	assert.Equal(t, "Learning Dashboard", replaceMsg.Screen.Title())
	assert.Equal(t, 1, *callCount)
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome()
	w.clock.Finish()

	w.Update(enter())
	_, cmd := w.Update(enter())
	assert.Nil(t, cmd, "second enter should not produce a command")
	assert.Equal(t, 1, *callCount)
}

func TestQuitItem(t *testing.T) {
	w, callCount := newTestWelcome()
	w.clock.Finish()

	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := w.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, *callCount)
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 50)

	assert.Zero(t, *callCount)
	assert.Equal(t, reveal.Duration(), w.clock.Elapsed())
}

func TestCompactBanner(t *testing.T) {
	assert.Contains(t, RenderBanner(80, 24), "L E A R N Y S T")
	assert.NotContains(t, RenderBanner(120, 40), "L E A R N Y S T")
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	assert.Empty(t, w.Title())
}
