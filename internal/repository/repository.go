// Package repository implements the bookmark storage contract on
// Postgres through the pgx stdlib driver.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/storage"
)

// InitDB opens the database and makes sure the bookmark table exists.
// The table name comes from configuration so deployments can share a
// database.
func InitDB(dsn, tableName string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTable := `
		CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id UUID PRIMARY KEY,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		favicon_url TEXT,
		saved_at BIGINT NOT NULL,
		tags JSONB,
		notes TEXT
	);`

	if _, err := db.Exec(createTable); err != nil {
		logger.Fatal("cannot create bookmark table", zap.Error(err))
	}

	return db
}

// BookmarkRepository is the Postgres implementation of
// storage.StorageI.
type BookmarkRepository struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

func CreateBookmarkRepository(db *sql.DB, tableName string, logger *zap.Logger) *BookmarkRepository {
	return &BookmarkRepository{
		db:     db,
		table:  tableName,
		logger: logger,
	}
}

func (r *BookmarkRepository) Put(ctx context.Context, v storage.BookmarkRecord) error {
	var tags any
	if len(v.Tags) > 0 {
		b, err := json.Marshal(v.Tags)
		if err != nil {
			return err
		}
		tags = b
	}

	var notes any
	if v.Notes != "" {
		notes = v.Notes
	}

	var favicon any
	if v.FaviconURL != "" {
		favicon = v.FaviconURL
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO "+r.table+"(id, url, title, favicon_url, saved_at, tags, notes) VALUES ($1, $2, $3, $4, $5, $6, $7);",
		v.ID, v.Original, v.Title, favicon, v.SavedAt, tags, notes,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return storage.ErrConflict
		}
		r.logger.Error("insert failed", zap.Error(err))
		return err
	}

	return nil
}

// Scan pages through the table in id order, which is the backend's
// own traversal order, not the savedAt order the API presents. One
// extra row is requested to detect whether more data exists beyond
// the page boundary.
func (r *BookmarkRepository) Scan(ctx context.Context, limit int, startAfter *storage.PageKey) (*storage.ScanResult, error) {
	query := "SELECT id, url, title, favicon_url, saved_at, tags, notes FROM " + r.table
	args := []any{limit + 1}
	if startAfter != nil {
		query += " WHERE id::text > $2"
		args = append(args, startAfter.ID)
	}
	query += " ORDER BY id::text LIMIT $1;"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.BookmarkRecord, 0, limit)
	for rows.Next() {
		var (
			rec     storage.BookmarkRecord
			favicon sql.NullString
			tags    []byte
			notes   sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Original, &rec.Title, &favicon, &rec.SavedAt, &tags, &notes); err != nil {
			return nil, err
		}
		rec.FaviconURL = favicon.String
		rec.Notes = notes.String
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &rec.Tags); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &storage.ScanResult{Records: records}
	if len(records) > limit {
		result.Records = records[:limit]
		result.HasMore = true
		last := result.Records[limit-1]
		result.LastKey = &storage.PageKey{ID: last.ID, SavedAt: last.SavedAt}
	}

	return result, nil
}

func (r *BookmarkRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
