package learnpath

import (
	"context"
	"time"

	"github.com/learnyst/learnyst/internal/subject"
)

type timeoutGenerator struct {
	inner   Generator
	timeout time.Duration
}

// WithTimeout bounds every call to g by d. A non-positive d leaves g
// unbounded.
func WithTimeout(g Generator, d time.Duration) Generator {
	if d <= 0 {
		return g
	}
	return &timeoutGenerator{inner: g, timeout: d}
}

func (t *timeoutGenerator) Generate(ctx context.Context, input Input) ([]subject.TopicNode, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, input)
}
