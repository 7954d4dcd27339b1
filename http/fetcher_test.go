package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/pagebrief"
	pbhttp "github.com/fwojciec/pagebrief/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_ReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := pbhttp.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "hello")
}

func TestFetcher_Fetch_SendsBrowserUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := pbhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, pbhttp.DefaultUserAgent, gotUA)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestFetcher_Fetch_ForbiddenMapsToBlocked(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := pbhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, pagebrief.EBLOCKED, pagebrief.ErrorCode(err))
	assert.Contains(t, pagebrief.ErrorMessage(err), srv.URL)
}

func TestFetcher_Fetch_ServiceUnavailableMapsToBlocked(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := pbhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, pagebrief.EBLOCKED, pagebrief.ErrorCode(err))
}

func TestFetcher_Fetch_ServerErrorMapsToNetwork(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := pbhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, pagebrief.ENETWORK, pagebrief.ErrorCode(err))
}

func TestFetcher_Fetch_TimeoutMapsToTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := pbhttp.NewFetcher(pbhttp.WithTimeout(20 * time.Millisecond))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, pagebrief.ETIMEOUT, pagebrief.ErrorCode(err))
}

func TestFetcher_Fetch_ConnectionRefusedMapsToNetwork(t *testing.T) {
	t.Parallel()

	f := pbhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")

	require.Error(t, err)
	assert.Equal(t, pagebrief.ENETWORK, pagebrief.ErrorCode(err))
}

func TestFetcher_Close_NoOp(t *testing.T) {
	t.Parallel()

	assert.NoError(t, pbhttp.NewFetcher().Close())
}
