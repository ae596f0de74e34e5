// Package service implements the bookmark operations behind the HTTP
// handlers: identity and timestamp assignment on save, and
// token-resumable pagination on list.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/apperr"
	"github.com/recollect/recollect/internal/models"
	"github.com/recollect/recollect/internal/storage"
	"github.com/recollect/recollect/internal/validation"
)

// SaveInput carries the client-supplied fields of a save request.
// Identity and timestamp are always assigned server-side.
type SaveInput struct {
	URL        string
	Title      string
	FaviconURL string
}

// BookmarkService coordinates validation, identity assignment and
// storage access for both API operations.
type BookmarkService struct {
	repository Storage
	logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewBookmark(repo Storage, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{
		repository: repo,
		logger:     logger,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *BookmarkService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// CreateBookmark validates the input, stamps it with a fresh UUID and
// the wall-clock save time, and inserts it. Saving the same URL twice
// creates two independent records.
func (s *BookmarkService) CreateBookmark(ctx context.Context, in SaveInput) (*storage.BookmarkRecord, error) {
	original, err := validation.RequiredString(in.URL, "url", validation.StringOptions{Required: true, MaxLength: 2048})
	if err != nil {
		return nil, err
	}
	if err := validation.URL(original, "url"); err != nil {
		return nil, err
	}

	title, err := validation.RequiredString(in.Title, "title", validation.StringOptions{Required: true, MaxLength: 500})
	if err != nil {
		return nil, err
	}

	// An unusable favicon is dropped with a warning instead of
	// rejecting the whole request. An over-long one is still a hard
	// failure.
	favicon := strings.TrimSpace(in.FaviconURL)
	if favicon != "" {
		if err := validation.URL(favicon, "faviconUrl"); err != nil {
			s.logger.Warn("invalid favicon URL, dropping", zap.String("faviconUrl", favicon))
			favicon = ""
		}
	}
	if favicon != "" {
		if _, err := validation.RequiredString(favicon, "faviconUrl", validation.StringOptions{MaxLength: 2048}); err != nil {
			return nil, err
		}
	}

	record := storage.BookmarkRecord{
		ID:         s.newID(),
		Original:   original,
		Title:      title,
		FaviconURL: favicon,
		SavedAt:    s.now().UnixMilli(),
	}

	if err := s.repository.Put(ctx, record); err != nil {
		return nil, apperr.Internal("Failed to save URL", err)
	}

	s.logger.Info("URL saved", zap.String("id", record.ID))
	return &record, nil
}

// ListBookmarks fetches one page and re-sorts it by savedAt,
// newest first. The continuation key still names a position in the
// backend's unsorted traversal, so consecutive pages do not form one
// globally sorted sequence.
func (s *BookmarkService) ListBookmarks(ctx context.Context, limit int, lastKey string) (*models.ListURLsResponse, error) {
	var startAfter *storage.PageKey
	if lastKey != "" {
		key, err := storage.DecodePageToken(lastKey)
		if err != nil {
			return nil, err
		}
		startAfter = &key
	}

	result, err := s.repository.Scan(ctx, limit, startAfter)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch URLs", err)
	}

	records := result.Records
	if records == nil {
		// The wire shape promises an array, never null.
		records = []storage.BookmarkRecord{}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SavedAt > records[j].SavedAt
	})

	response := &models.ListURLsResponse{
		URLs:    records,
		HasMore: result.HasMore,
	}
	if result.HasMore && result.LastKey != nil {
		response.LastKey = storage.EncodePageToken(*result.LastKey)
	}

	return response, nil
}
