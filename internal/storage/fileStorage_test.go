package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestFileStorage(t *testing.T) *FileStorage {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bookmarks.jsonl")
	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = fs.Close() })

	return fs
}

func TestFileStoragePutAndScan(t *testing.T) {
	fs := newTestFileStorage(t)

	for i := 0; i < 3; i++ {
		err := fs.Put(context.Background(), BookmarkRecord{
			ID:       fmt.Sprintf("id-%d", i),
			Original: fmt.Sprintf("https://example.com/%d", i),
			Title:    "Example",
			SavedAt:  int64(1700000000000 + i),
		})
		require.NoError(t, err)
	}

	res, err := fs.Scan(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	// File order is insertion order.
	assert.Equal(t, "id-0", res.Records[0].ID)
	assert.Equal(t, "id-2", res.Records[2].ID)
	assert.False(t, res.HasMore)
}

func TestFileStorageResume(t *testing.T) {
	fs := newTestFileStorage(t)

	for i := 0; i < 4; i++ {
		require.NoError(t, fs.Put(context.Background(), BookmarkRecord{
			ID:      fmt.Sprintf("id-%d", i),
			SavedAt: int64(i),
		}))
	}

	first, err := fs.Scan(context.Background(), 2, nil)
	require.NoError(t, err)
	require.True(t, first.HasMore)
	require.NotNil(t, first.LastKey)

	second, err := fs.Scan(context.Background(), 2, first.LastKey)
	require.NoError(t, err)
	assert.Equal(t, "id-2", second.Records[0].ID)
	assert.False(t, second.HasMore)
}

func TestFileStorageConflict(t *testing.T) {
	fs := newTestFileStorage(t)

	require.NoError(t, fs.Put(context.Background(), BookmarkRecord{ID: "same"}))
	assert.ErrorIs(t, fs.Put(context.Background(), BookmarkRecord{ID: "same"}), ErrConflict)
}

func TestFileStorageSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.jsonl")
	content := `{"id":"good-1","url":"https://example.com/1","title":"One","savedAt":1}` + "\n" +
		`{"id":"torn` + "\n" +
		`{"id":"good-2","url":"https://example.com/2","title":"Two","savedAt":2}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))

	core, logs := observer.New(zap.InfoLevel)
	fs, err := NewFileStorage(path, zap.New(core))
	require.NoError(t, err)
	defer fs.Close()

	res, err := fs.Scan(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "good-1", res.Records[0].ID)
	assert.Equal(t, "good-2", res.Records[1].ID)

	assert.NotEmpty(t, logs.FilterMessage("skipping corrupt bookmark line").All())
	replays := logs.FilterMessage("replayed bookmark file").All()
	require.Len(t, replays, 1)
	assert.Equal(t, int64(2), replays[0].ContextMap()["records"])
}

func TestFileStorageReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.jsonl")

	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, fs.Put(context.Background(), BookmarkRecord{ID: "persisted", Original: "https://example.com"}))
	require.NoError(t, fs.Close())

	reopened, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	res, err := reopened.Scan(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "persisted", res.Records[0].ID)

	// The index survives a reload too.
	assert.ErrorIs(t, reopened.Put(context.Background(), BookmarkRecord{ID: "persisted"}), ErrConflict)
}
