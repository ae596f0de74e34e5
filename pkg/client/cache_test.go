package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect/recollect/internal/models"
	"github.com/recollect/recollect/internal/storage"
)

func record(id string, savedAt int64) storage.BookmarkRecord {
	return storage.BookmarkRecord{
		ID:       id,
		Original: "https://example.com/" + id,
		Title:    "Record " + id,
		SavedAt:  savedAt,
	}
}

func feedServer(t *testing.T, pages []models.ListURLsResponse, calls *atomic.Int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		require.LessOrEqual(t, int(n), len(pages), "unexpected extra request")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pages[n-1])
	}))
}

func TestCachedPageIsFresh(t *testing.T) {
	now := time.Now()

	var nilPage *cachedPage
	assert.False(t, nilPage.isFresh(now, FreshnessWindow))
	assert.False(t, (&cachedPage{}).isFresh(now, FreshnessWindow))

	fresh := &cachedPage{FetchedAt: now.Add(-time.Minute)}
	assert.True(t, fresh.isFresh(now, FreshnessWindow))

	stale := &cachedPage{FetchedAt: now.Add(-6 * time.Minute)}
	assert.False(t, stale.isFresh(now, FreshnessWindow))
}

func TestFeedLoadBlocking(t *testing.T) {
	var calls atomic.Int64
	srv := feedServer(t, []models.ListURLsResponse{{
		URLs:    []storage.BookmarkRecord{record("a", 2), record("b", 1)},
		HasMore: true,
		LastKey: "next",
	}}, &calls)
	defer srv.Close()

	feed := NewFeed(New(srv.URL, "secret"), 2, "")
	require.NoError(t, feed.Load(context.Background()))

	urls := feed.URLs()
	require.Len(t, urls, 2)
	assert.Equal(t, "a", urls[0].ID)
	assert.True(t, feed.HasMore())
	assert.Equal(t, int64(1), calls.Load())
}

func TestFeedLoadMore(t *testing.T) {
	var calls atomic.Int64
	srv := feedServer(t, []models.ListURLsResponse{
		{URLs: []storage.BookmarkRecord{record("a", 3), record("b", 2)}, HasMore: true, LastKey: "next"},
		{URLs: []storage.BookmarkRecord{record("c", 1)}, HasMore: false},
	}, &calls)
	defer srv.Close()

	feed := NewFeed(New(srv.URL, "secret"), 2, "")
	require.NoError(t, feed.Load(context.Background()))
	require.NoError(t, feed.LoadMore(context.Background()))

	urls := feed.URLs()
	require.Len(t, urls, 3)
	assert.Equal(t, "c", urls[2].ID)
	assert.False(t, feed.HasMore())

	// Exhausted feed makes LoadMore a no-op.
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Equal(t, int64(2), calls.Load())
}

func TestFeedFreshCacheRendersImmediately(t *testing.T) {
	var calls atomic.Int64
	srv := feedServer(t, []models.ListURLsResponse{{
		URLs:    []storage.BookmarkRecord{record("new", 5)},
		HasMore: false,
	}}, &calls)
	defer srv.Close()

	feed := NewFeed(New(srv.URL, "secret"), 2, "")
	feed.cache = &cachedPage{
		URLs:      []storage.BookmarkRecord{record("cached", 1)},
		FetchedAt: time.Now().Add(-time.Minute),
	}

	require.NoError(t, feed.Load(context.Background()))

	// The cached page comes back before any network fetch completes.
	urls := feed.URLs()
	require.Len(t, urls, 1)
	assert.Equal(t, "cached", urls[0].ID)

	assert.Eventually(t, func() bool {
		u := feed.URLs()
		return len(u) == 1 && u[0].ID == "new"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
}

func TestFeedFailedRefreshKeepsCachedPageOnce(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	feed := NewFeed(New(srv.URL, "secret"), 2, "")
	feed.cache = &cachedPage{
		URLs:      []storage.BookmarkRecord{record("a", 2), record("b", 1)},
		FetchedAt: time.Now().Add(-time.Minute),
	}

	require.NoError(t, feed.Load(context.Background()))

	// The cached render reports no further pages until the server
	// says otherwise.
	assert.False(t, feed.HasMore())

	require.Eventually(t, func() bool {
		feed.mu.Lock()
		defer feed.mu.Unlock()
		return !feed.busy
	}, time.Second, 10*time.Millisecond)

	// With the refresh failed, LoadMore must not refetch page one and
	// append it to the cached copy.
	require.NoError(t, feed.LoadMore(context.Background()))

	urls := feed.URLs()
	require.Len(t, urls, 2)
	assert.Equal(t, "a", urls[0].ID)
	assert.Equal(t, "b", urls[1].ID)
	assert.Equal(t, int64(1), calls.Load())
}

func TestFeedStaleCacheBlocks(t *testing.T) {
	var calls atomic.Int64
	srv := feedServer(t, []models.ListURLsResponse{{
		URLs:    []storage.BookmarkRecord{record("new", 5)},
		HasMore: false,
	}}, &calls)
	defer srv.Close()

	feed := NewFeed(New(srv.URL, "secret"), 2, "")
	feed.cache = &cachedPage{
		URLs:      []storage.BookmarkRecord{record("stale", 1)},
		FetchedAt: time.Now().Add(-10 * time.Minute),
	}

	require.NoError(t, feed.Load(context.Background()))

	urls := feed.URLs()
	require.Len(t, urls, 1)
	assert.Equal(t, "new", urls[0].ID)
}

func TestFeedPersistAndRestore(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "feed.json")

	var calls atomic.Int64
	srv := feedServer(t, []models.ListURLsResponse{{
		URLs:    []storage.BookmarkRecord{record("a", 1)},
		HasMore: false,
	}}, &calls)
	defer srv.Close()

	feed := NewFeed(New(srv.URL, "secret"), 2, cachePath)
	require.NoError(t, feed.Load(context.Background()))

	raw, err := os.ReadFile(cachePath)
	require.NoError(t, err)

	var page cachedPage
	require.NoError(t, json.Unmarshal(raw, &page))
	require.Len(t, page.URLs, 1)
	assert.Equal(t, "a", page.URLs[0].ID)

	restored := NewFeed(New(srv.URL, "secret"), 2, cachePath)
	require.NotNil(t, restored.cache)
	assert.Equal(t, "a", restored.cache.URLs[0].ID)
}

func TestFeedRestoreIgnoresCorruptFile(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "feed.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("{not json"), 0o600))

	feed := NewFeed(New("https://api.example.com", "secret"), 2, cachePath)
	assert.Nil(t, feed.cache)
}
