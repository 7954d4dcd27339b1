package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagebrief"
)

// DefaultMaxAge is how long a cached page stays fresh.
const DefaultMaxAge = 24 * time.Hour

// Compile-time interface verification.
var _ pagebrief.PageCache = (*PageCache)(nil)

// PageCache implements pagebrief.PageCache using SQLite. Entries older than
// the configured max age are treated as misses.
type PageCache struct {
	db     *DB
	maxAge time.Duration
	now    func() time.Time
}

// CacheOption configures a PageCache.
type CacheOption func(*PageCache)

// WithMaxAge sets the freshness window. Defaults to DefaultMaxAge.
func WithMaxAge(d time.Duration) CacheOption {
	return func(c *PageCache) {
		c.maxAge = d
	}
}

// NewPageCache creates a new PageCache backed by db.
func NewPageCache(db *DB, opts ...CacheOption) *PageCache {
	c := &PageCache{
		db:     db,
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached HTML for the URL and strategy, if fresh.
func (c *PageCache) Get(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error) {
	var html, fetchedAt string
	err := c.db.QueryRowContext(ctx,
		`SELECT html, fetched_at FROM pages WHERE url = ? AND strategy = ?`,
		url, string(strategy),
	).Scan(&html, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, pagebrief.Errorf(pagebrief.EINTERNAL, "reading page cache: %v", err)
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return "", false, pagebrief.Errorf(pagebrief.EINTERNAL, "failed to parse fetched_at: %v", err)
	}
	if c.now().Sub(t) > c.maxAge {
		return "", false, nil
	}

	return html, true, nil
}

// Put stores a fetched page, replacing any previous entry.
func (c *PageCache) Put(ctx context.Context, page *pagebrief.Page) error {
	if page.URL == "" {
		return pagebrief.Errorf(pagebrief.EINVALID, "page URL required")
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pages (url, strategy, html, content_hash, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (url, strategy) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at`,
		page.URL, string(page.Strategy), page.HTML, hashContent(page.HTML),
		c.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return pagebrief.Errorf(pagebrief.EINTERNAL, "writing page cache: %v", err)
	}
	return nil
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}
