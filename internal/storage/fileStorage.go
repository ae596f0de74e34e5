package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStorage persists bookmarks as one JSON object per line in an
// append-only file. Its traversal order is file order, i.e. insertion
// order, which again is unrelated to the savedAt presentation order.
type FileStorage struct {
	mu     sync.Mutex
	file   *os.File
	ids    map[string]struct{}
	logger *zap.Logger
}

func NewFileStorage(p string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0o770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE, 0o660)
	if err != nil {
		return nil, err
	}

	fs := &FileStorage{
		file:   file,
		ids:    make(map[string]struct{}),
		logger: logger,
	}

	records, err := fs.readAll()
	if err != nil {
		file.Close()
		return nil, err
	}
	for _, r := range records {
		fs.ids[r.ID] = struct{}{}
	}

	logger.Info("replayed bookmark file", zap.String("path", p), zap.Int("records", len(fs.ids)))

	return fs, nil
}

func (fs *FileStorage) Put(_ context.Context, record BookmarkRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, exists := fs.ids[record.ID]; exists {
		return ErrConflict
	}

	b, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if _, err := fs.file.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	if _, err := fs.file.Write(append(b, '\n')); err != nil {
		return err
	}

	fs.ids[record.ID] = struct{}{}
	return nil
}

func (fs *FileStorage) Scan(_ context.Context, limit int, startAfter *PageKey) (*ScanResult, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records, err := fs.readAll()
	if err != nil {
		return nil, err
	}

	start := 0
	if startAfter != nil {
		for i, r := range records {
			if r.ID == startAfter.ID {
				start = i + 1
				break
			}
		}
	}

	result := &ScanResult{Records: make([]BookmarkRecord, 0, limit)}
	for _, r := range records[min(start, len(records)):] {
		if len(result.Records) == limit {
			result.HasMore = true
			break
		}
		result.Records = append(result.Records, r)
	}

	if result.HasMore {
		last := result.Records[len(result.Records)-1]
		result.LastKey = &PageKey{ID: last.ID, SavedAt: last.SavedAt}
	}

	return result, nil
}

func (fs *FileStorage) PingContext(_ context.Context) error {
	_, err := fs.file.Stat()
	return err
}

// Close releases the underlying file handle.
func (fs *FileStorage) Close() error {
	return fs.file.Close()
}

// readAll re-reads the whole file. Callers hold the mutex.
func (fs *FileStorage) readAll() ([]BookmarkRecord, error) {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var records []BookmarkRecord
	scanner := bufio.NewScanner(fs.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record BookmarkRecord
		if err := json.Unmarshal(line, &record); err != nil {
			// A torn append must not take every other record with it.
			fs.logger.Warn("skipping corrupt bookmark line", zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return records, nil
}
