package service

import (
	"context"

	"github.com/recollect/recollect/internal/models"
	"github.com/recollect/recollect/internal/storage"
)

// Storage is the backend contract the service depends on. Satisfied by
// the memory, file, Redis and Postgres implementations.
type Storage interface {
	Put(context.Context, storage.BookmarkRecord) error
	Scan(ctx context.Context, limit int, startAfter *storage.PageKey) (*storage.ScanResult, error)
	PingContext(context.Context) error
}

// BookmarkServiceIface is what the HTTP handlers see. Extracted for
// mocking.
type BookmarkServiceIface interface {
	CreateBookmark(ctx context.Context, in SaveInput) (*storage.BookmarkRecord, error)
	ListBookmarks(ctx context.Context, limit int, lastKey string) (*models.ListURLsResponse, error)
	PingContext(ctx context.Context) error
}
