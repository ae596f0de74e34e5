package client

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/recollect/recollect/internal/storage"
)

// FreshnessWindow is how long a cached first page is rendered without
// hitting the server.
const FreshnessWindow = 5 * time.Minute

// cachedPage is the persisted snapshot of the first list page.
type cachedPage struct {
	URLs      []storage.BookmarkRecord `json:"urls"`
	FetchedAt time.Time                `json:"fetchedAt"`
}

func (p *cachedPage) isFresh(now time.Time, window time.Duration) bool {
	if p == nil || p.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(p.FetchedAt) < window
}

// Feed accumulates list pages with a freshness-cached first page. The
// zero value is not usable; use NewFeed.
type Feed struct {
	client   *Client
	pageSize int

	// cachePath, when set, persists the first page as JSON between
	// runs.
	cachePath string

	mu      sync.Mutex
	urls    []storage.BookmarkRecord
	lastKey string
	hasMore bool
	busy    bool
	cache   *cachedPage

	now func() time.Time
}

// NewFeed returns a feed over c. cachePath may be empty to disable
// persistence.
func NewFeed(c *Client, pageSize int, cachePath string) *Feed {
	f := &Feed{
		client:    c,
		pageSize:  pageSize,
		cachePath: cachePath,
		now:       time.Now,
	}
	f.restore()
	return f
}

// URLs returns the currently loaded records.
func (f *Feed) URLs() []storage.BookmarkRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]storage.BookmarkRecord, len(f.urls))
	copy(out, f.urls)
	return out
}

// HasMore reports whether the server holds pages beyond the loaded
// ones.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Load fills the feed with the first page. When the cached page is
// still fresh it is installed immediately and the refresh runs in the
// background; otherwise Load blocks on the fetch.
func (f *Feed) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil
	}

	if f.cache.isFresh(f.now(), FreshnessWindow) {
		// A cached render carries no pagination state; hasMore stays
		// false until a server response reports it, so LoadMore cannot
		// refetch and duplicate page one after a failed refresh.
		f.urls = append([]storage.BookmarkRecord(nil), f.cache.URLs...)
		f.lastKey = ""
		f.hasMore = false
		f.busy = true
		f.mu.Unlock()

		go func() {
			// Background refresh; errors keep the cached view.
			_ = f.fetchFirst(ctx)
		}()
		return nil
	}

	f.busy = true
	f.mu.Unlock()

	return f.fetchFirst(ctx)
}

// LoadMore appends the next page. It is a no-op while a fetch is in
// flight or when the server reported no further data.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.busy || !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	f.busy = true
	lastKey := f.lastKey
	f.mu.Unlock()

	list, err := f.client.GetURLs(ctx, f.pageSize, lastKey)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		return err
	}

	f.urls = append(f.urls, list.URLs...)
	f.lastKey = list.LastKey
	f.hasMore = list.HasMore
	return nil
}

func (f *Feed) fetchFirst(ctx context.Context) error {
	list, err := f.client.GetURLs(ctx, f.pageSize, "")

	f.mu.Lock()
	f.busy = false
	if err != nil {
		f.mu.Unlock()
		return err
	}

	f.urls = append([]storage.BookmarkRecord(nil), list.URLs...)
	f.lastKey = list.LastKey
	f.hasMore = list.HasMore
	f.cache = &cachedPage{URLs: f.urls, FetchedAt: f.now()}
	snapshot := *f.cache
	f.mu.Unlock()

	f.persist(&snapshot)
	return nil
}

// restore loads the persisted first page, if any. Corrupt or missing
// files are ignored.
func (f *Feed) restore() {
	if f.cachePath == "" {
		return
	}

	raw, err := os.ReadFile(f.cachePath)
	if err != nil {
		return
	}

	var page cachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return
	}

	f.cache = &page
}

func (f *Feed) persist(page *cachedPage) {
	if f.cachePath == "" {
		return
	}

	raw, err := json.Marshal(page)
	if err != nil {
		return
	}

	_ = os.WriteFile(f.cachePath, raw, 0o600)
}
