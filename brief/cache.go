package brief

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher wraps a Fetcher with a PageCache. Cache hits skip the
// network entirely; successful fetches are stored for later reuse. Cache
// failures never fail a fetch.
type CachingFetcher struct {
	next     pagebrief.Fetcher
	cache    pagebrief.PageCache
	strategy pagebrief.FetchStrategy
}

// NewCachingFetcher creates a CachingFetcher. The strategy identifies the
// wrapped fetcher's rendering mode so static and rendered snapshots of the
// same URL are cached separately.
func NewCachingFetcher(next pagebrief.Fetcher, cache pagebrief.PageCache, strategy pagebrief.FetchStrategy) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache, strategy: strategy}
}

// Fetch returns the cached HTML when present and fresh, otherwise delegates
// to the wrapped fetcher and stores the result.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok, err := f.cache.Get(ctx, url, f.strategy); err == nil && ok {
		return html, nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	_ = f.cache.Put(ctx, &pagebrief.Page{
		URL:      url,
		HTML:     html,
		Strategy: f.strategy,
	})

	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
