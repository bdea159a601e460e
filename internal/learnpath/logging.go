package learnpath

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/learnyst/learnyst/internal/subject"
)

// LoggingGenerator is a decorator that records every generation call.
type LoggingGenerator struct {
	inner  Generator
	logger *zap.Logger
}

// WithLogging wraps a Generator with structured logging.
func WithLogging(g Generator, logger *zap.Logger) Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingGenerator{inner: g, logger: logger.Named("learnpath")}
}

func (l *LoggingGenerator) Generate(ctx context.Context, input Input) ([]subject.TopicNode, error) {
	start := time.Now()
	nodes, err := l.inner.Generate(ctx, input)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("subject", input.SubjectName),
		zap.Int("syllabus_chars", utf8.RuneCountInString(input.Syllabus)),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if err != nil {
		l.logger.Warn("learning path generation failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.logger.Info("learning path generated",
		append(fields,
			zap.Int("roots", len(nodes)),
			zap.Int("nodes", CountNodes(nodes)),
		)...,
	)
	return nodes, nil
}
