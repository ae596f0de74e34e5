package storage

import (
	"context"
	"errors"
)

// ErrConflict reports an insert that collided with an existing ID.
// With server-generated UUIDs this is practically impossible, but the
// backends still detect it instead of silently overwriting.
var ErrConflict = errors.New("data conflict")

// StorageI is the put/scan contract every bookmark backend implements.
type StorageI interface {
	// Put inserts a new record unconditionally.
	Put(context.Context, BookmarkRecord) error

	// Scan returns up to limit records in the backend's own traversal
	// order, resuming after startAfter when it is non-nil.
	Scan(ctx context.Context, limit int, startAfter *PageKey) (*ScanResult, error)

	PingContext(context.Context) error
}

var (
	_ StorageI = (*MemoryStorage)(nil)
	_ StorageI = (*FileStorage)(nil)
	_ StorageI = (*RedisStorage)(nil)
)
