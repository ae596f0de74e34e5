package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStorage keeps bookmarks in a map. Its traversal order is
// lexicographic by ID, which bears no relation to savedAt, matching
// the unordered-scan semantics of the managed backends.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]BookmarkRecord
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		records: make(map[string]BookmarkRecord),
	}, nil
}

func (m *MemoryStorage) Put(_ context.Context, record BookmarkRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		return ErrConflict
	}

	m.records[record.ID] = record
	return nil
}

func (m *MemoryStorage) Scan(_ context.Context, limit int, startAfter *PageKey) (*ScanResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
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
		result.Records = append(result.Records, m.records[id])
	}

	if result.HasMore {
		last := result.Records[len(result.Records)-1]
		result.LastKey = &PageKey{ID: last.ID, SavedAt: last.SavedAt}
	}

	return result, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}
