package mock

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of pagebrief.PageCache.
type PageCache struct {
	GetFn func(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error)
	PutFn func(ctx context.Context, page *pagebrief.Page) error
}

func (c *PageCache) Get(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error) {
	return c.GetFn(ctx, url, strategy)
}

func (c *PageCache) Put(ctx context.Context, page *pagebrief.Page) error {
	return c.PutFn(ctx, page)
}
