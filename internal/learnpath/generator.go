package learnpath

import (
	"context"

	"github.com/learnyst/learnyst/internal/subject"
)

// Generator produces the learning path for a new subject.
type Generator interface {
	// Generate returns the root topic nodes for the given input.
	// Implementations must return promptly with the context error once
	// ctx is cancelled or its deadline passes.
	Generate(ctx context.Context, input Input) ([]subject.TopicNode, error)
}

// Input holds what the user entered in the creation dialog.
type Input struct {
	SubjectName string
	Syllabus    string
}
