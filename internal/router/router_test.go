package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnyst/learnyst/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "create"}
	r.Push(s2)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "create", r.Active().Title())
	assert.True(t, s2.initRan, "Init() should run on the pushed screen")
}

func TestPopResumesScreenBelow(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)
	r.Push(&stubScreen{title: "create"})

	cmd := r.Pop()
	require.NotNil(t, cmd)
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "dashboard", r.Active().Title())

	r.Update(cmd())
	require.Len(t, s1.got, 1)
	assert.IsType(t, screen.ResumeMsg{}, s1.got[0])
}

type closingScreen struct {
	stubScreen
	closed bool
}

func (c *closingScreen) Close() { c.closed = true }

func TestPopClosesScreen(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})
	top := &closingScreen{stubScreen: stubScreen{title: "create"}}
	r.Push(top)

	r.Pop()
	assert.True(t, top.closed)
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	s2 := &stubScreen{title: "dashboard"}
	r.Replace(s2)

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "dashboard", r.Active().Title())
	assert.True(t, s2.initRan, "Init() should run on the replacement")
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	dash := &stubScreen{title: "dashboard"}
	r.Update(ReplaceScreenMsg{Screen: dash})
	assert.Equal(t, "dashboard", r.Active().Title())
	assert.True(t, dash.initRan)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "create"}})
	assert.Equal(t, 2, r.Depth())

	r.Update(PopScreenMsg{})
	assert.Equal(t, "dashboard", r.Active().Title())
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})
	r.Push(&stubScreen{title: "create"})
	r.Replace(&stubScreen{title: "hub"})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "hub", r.Active().Title())
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	r.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	require.Len(t, s1.got, 1)
	assert.Equal(t, "dashboard", r.View(80, 24))
}
