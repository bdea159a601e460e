// Package effects holds the animation state shared by screens: a tick
// clock, cycling pulse frames and staged reveals.
package effects

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// TickMsg advances the Clock with the matching ID.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// Clock counts animation ticks. Each Clock only reacts to its own
// TickMsg, so a screen left on the router stack cannot steal ticks from
// the one above it.
type Clock struct {
	id       int64
	interval time.Duration
	limit    time.Duration
	elapsed  time.Duration
	ticks    int
}

// NewClock creates a clock ticking every interval. Elapsed time stops
// growing at limit; ticks keep counting so pulses continue.
func NewClock(interval, limit time.Duration) Clock {
	return Clock{
		id:       nextID(),
		interval: interval,
		limit:    limit,
	}
}

// ID identifies the clock's TickMsgs.
func (c Clock) ID() int64 { return c.id }

// Tick schedules the next TickMsg.
func (c Clock) Tick() tea.Cmd {
	id := c.id
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// Update advances the clock when msg belongs to it and returns the
// command for the following tick. ok is false for foreign messages.
func (c Clock) Update(msg tea.Msg) (Clock, tea.Cmd, bool) {
	tick, isTick := msg.(TickMsg)
	if !isTick || tick.ID != c.id {
		return c, nil, false
	}
	c.ticks++
	if c.elapsed < c.limit {
		c.elapsed += c.interval
		if c.elapsed > c.limit {
			c.elapsed = c.limit
		}
	}
	return c, c.Tick(), true
}

// Restart re-keys the clock so ticks scheduled before the call are
// ignored, then schedules a new tick. Screens call it when they become
// active again.
func (c *Clock) Restart() tea.Cmd {
	c.id = nextID()
	return c.Tick()
}

// Finish jumps to the end of the animation.
func (c *Clock) Finish() {
	c.elapsed = c.limit
}

// Elapsed returns the animation time so far, capped at the limit.
func (c Clock) Elapsed() time.Duration { return c.elapsed }

// Ticks returns the number of ticks received.
func (c Clock) Ticks() int { return c.ticks }

// Done reports whether the limit has been reached.
func (c Clock) Done() bool { return c.elapsed >= c.limit }

// Pulse is a set of frames cycled once per tick.
type Pulse []string

// Frame returns the frame for the given tick count.
func (p Pulse) Frame(ticks int) string {
	if len(p) == 0 {
		return ""
	}
	return p[ticks%len(p)]
}

// Sparkle is the twinkle shown beside badges and notices.
var Sparkle = Pulse{"✦", "✧", "✦", "·"}

// Reveal is a staged entrance: stage i becomes visible after
// i*Stagger has elapsed.
type Reveal struct {
	Stages  int
	Stagger time.Duration
}

// Visible returns how many stages are showing at elapsed.
func (r Reveal) Visible(elapsed time.Duration) int {
	if r.Stagger <= 0 {
		return r.Stages
	}
	n := int(elapsed/r.Stagger) + 1
	if n > r.Stages {
		n = r.Stages
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Shown reports whether stage i is visible at elapsed.
func (r Reveal) Shown(i int, elapsed time.Duration) bool {
	return i < r.Visible(elapsed)
}

// Duration is the time until the last stage appears.
func (r Reveal) Duration() time.Duration {
	if r.Stages <= 1 {
		return 0
	}
	return time.Duration(r.Stages-1) * r.Stagger
}
