package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// keyPrefixBookmark is the prefix for per-bookmark keys.
	keyPrefixBookmark = "recollect:url:"

	// keyAllBookmarks is the set of all bookmark IDs.
	keyAllBookmarks = "recollect:urls:all"
)

// bookmarkKey returns the Redis key for a bookmark.
func bookmarkKey(id string) string {
	return keyPrefixBookmark + id
}

// RedisStorage persists each bookmark as a JSON value plus a set of
// all IDs. Set members are unordered; the scan traverses them in
// lexicographic ID order so a continuation key can name a resume
// position.
type RedisStorage struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStorage(client *redis.Client, logger *zap.Logger) *RedisStorage {
	return &RedisStorage{
		client: client,
		logger: logger,
	}
}

func (s *RedisStorage) Put(ctx context.Context, record BookmarkRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	ok, err := s.client.SetNX(ctx, bookmarkKey(record.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	if !ok {
		return ErrConflict
	}

	if err := s.client.SAdd(ctx, keyAllBookmarks, record.ID).Err(); err != nil {
		return fmt.Errorf("failed to add bookmark to set: %w", err)
	}

	return nil
}

func (s *RedisStorage) Scan(ctx context.Context, limit int, startAfter *PageKey) (*ScanResult, error) {
	ids, err := s.client.SMembers(ctx, keyAllBookmarks).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark IDs: %w", err)
	}
	sort.Strings(ids)

	start := 0
	if startAfter != nil {
		start = sort.SearchStrings(ids, startAfter.ID)
		if start < len(ids) && ids[start] == startAfter.ID {
			start++
		}
	}

	result := &ScanResult{Records: make([]BookmarkRecord, 0, limit)}
	for _, id := range ids[start:] {
		if len(result.Records) == limit {
			result.HasMore = true
			break
		}

		data, err := s.client.Get(ctx, bookmarkKey(id)).Bytes()
		if err != nil {
			// A member without a value means a partially removed
			// record. Skip it rather than failing the page.
			s.logger.Warn("bookmark set member has no value", zap.String("id", id), zap.Error(err))
			continue
		}

		var record BookmarkRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
		}
		result.Records = append(result.Records, record)
	}

	if result.HasMore {
		last := result.Records[len(result.Records)-1]
		result.LastKey = &PageKey{ID: last.ID, SavedAt: last.SavedAt}
	}

	return result, nil
}

func (s *RedisStorage) PingContext(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
