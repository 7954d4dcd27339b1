package pagebrief

import "context"

// PageCache stores fetched HTML keyed by URL and strategy, so a page shared
// between workflows (or repeated runs) is fetched once.
type PageCache interface {
	// Get returns the cached HTML for the URL and strategy.
	// The second return value reports whether a fresh entry existed.
	Get(ctx context.Context, url string, strategy FetchStrategy) (html string, ok bool, err error)

	// Put stores a fetched page, replacing any previous entry.
	Put(ctx context.Context, page *Page) error
}
