package brief_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/brief"
	"github.com/fwojciec/pagebrief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns cached HTML without fetching", func(t *testing.T) {
		t.Parallel()

		cache := &mock.PageCache{
			GetFn: func(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error) {
				return "<html>cached</html>", true, nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("fetcher must not be called on cache hit")
				return "", nil
			},
		}

		f := brief.NewCachingFetcher(inner, cache, pagebrief.StrategyStatic)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>cached</html>", html)
	})

	t.Run("fetches and stores on cache miss", func(t *testing.T) {
		t.Parallel()

		var stored *pagebrief.Page
		cache := &mock.PageCache{
			GetFn: func(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error) {
				return "", false, nil
			},
			PutFn: func(ctx context.Context, page *pagebrief.Page) error {
				stored = page
				return nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>fresh</html>", nil
			},
		}

		f := brief.NewCachingFetcher(inner, cache, pagebrief.StrategyRendered)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>fresh</html>", html)
		require.NotNil(t, stored)
		assert.Equal(t, "https://example.com", stored.URL)
		assert.Equal(t, pagebrief.StrategyRendered, stored.Strategy)
	})

	t.Run("cache errors fall through to the fetcher", func(t *testing.T) {
		t.Parallel()

		cache := &mock.PageCache{
			GetFn: func(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error) {
				return "", false, errors.New("disk full")
			},
			PutFn: func(ctx context.Context, page *pagebrief.Page) error {
				return errors.New("disk full")
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>fresh</html>", nil
			},
		}

		f := brief.NewCachingFetcher(inner, cache, pagebrief.StrategyStatic)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>fresh</html>", html)
	})

	t.Run("fetch errors are not cached", func(t *testing.T) {
		t.Parallel()

		putCalled := false
		cache := &mock.PageCache{
			GetFn: func(ctx context.Context, url string, strategy pagebrief.FetchStrategy) (string, bool, error) {
				return "", false, nil
			},
			PutFn: func(ctx context.Context, page *pagebrief.Page) error {
				putCalled = true
				return nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", pagebrief.Errorf(pagebrief.ENETWORK, "connection refused")
			},
		}

		f := brief.NewCachingFetcher(inner, cache, pagebrief.StrategyStatic)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.False(t, putCalled)
	})
}
