package mock

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of pagebrief.LinkClassifier.
type LinkClassifier struct {
	ClassifyFn func(ctx context.Context, seedURL string, candidates []pagebrief.Link) ([]pagebrief.ClassifiedLink, error)
}

func (c *LinkClassifier) Classify(ctx context.Context, seedURL string, candidates []pagebrief.Link) ([]pagebrief.ClassifiedLink, error) {
	return c.ClassifyFn(ctx, seedURL, candidates)
}
