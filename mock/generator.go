package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.Generator = (*Generator)(nil)

// Generator is a mock implementation of pagebrief.Generator.
type Generator struct {
	CompleteFn func(ctx context.Context, prompt pagebrief.Prompt) (string, error)
	StreamFn   func(ctx context.Context, prompt pagebrief.Prompt) iter.Seq2[string, error]
}

func (g *Generator) Complete(ctx context.Context, prompt pagebrief.Prompt) (string, error) {
	return g.CompleteFn(ctx, prompt)
}

func (g *Generator) Stream(ctx context.Context, prompt pagebrief.Prompt) iter.Seq2[string, error] {
	return g.StreamFn(ctx, prompt)
}
