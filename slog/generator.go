package slog

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/pagebrief"
)

// Ensure LoggingGenerator implements pagebrief.Generator.
var _ pagebrief.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   pagebrief.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next pagebrief.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Complete logs the completion call and delegates to the wrapped generator.
func (g *LoggingGenerator) Complete(ctx context.Context, prompt pagebrief.Prompt) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("complete",
			"prompt_chars", len(prompt.User),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Complete(ctx, prompt)
}

// Stream delegates to the wrapped generator and logs once the stream ends,
// whether it was drained or abandoned.
func (g *LoggingGenerator) Stream(ctx context.Context, prompt pagebrief.Prompt) iter.Seq2[string, error] {
	inner := g.next.Stream(ctx, prompt)
	return func(yield func(string, error) bool) {
		begin := time.Now()
		var bytes int
		var streamErr error
		defer func() {
			g.logger.Info("stream",
				"prompt_chars", len(prompt.User),
				"bytes", bytes,
				"duration", time.Since(begin),
				"err", streamErr,
			)
		}()
		for chunk, err := range inner {
			if err != nil {
				streamErr = err
			}
			bytes += len(chunk)
			if !yield(chunk, err) {
				return
			}
		}
	}
}
