package learnpath

import (
	"context"
	"time"

	"github.com/learnyst/learnyst/internal/subject"
)

// DefaultDelay stands in for the latency of a real analysis request.
const DefaultDelay = 2 * time.Second

// StaticGenerator returns the placeholder outline after a simulated delay.
// The input is accepted but never inspected.
type StaticGenerator struct {
	delay time.Duration
}

var _ Generator = (*StaticGenerator)(nil)

// NewStatic creates a StaticGenerator. A zero or negative delay returns
// immediately.
func NewStatic(delay time.Duration) *StaticGenerator {
	return &StaticGenerator{delay: delay}
}

func (g *StaticGenerator) Generate(ctx context.Context, _ Input) ([]subject.TopicNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return Outline(), nil
}
