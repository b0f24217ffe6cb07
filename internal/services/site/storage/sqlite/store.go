package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Godwin-Baiju/aissol-test/internal/platform/storage/sqlitemigrate"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store provides SQLite-backed persistence for site data.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a site SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	// modernc.org/sqlite applies _pragma parameters on every pooled connection.
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCacheEntry loads a cache payload and metadata by key.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return storage.CacheEntry{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	var entry storage.CacheEntry
	var refreshedAt, expiresAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT cache_key, scope, payload_json, refreshed_at, expires_at
		   FROM cache_entries
		  WHERE cache_key = ?`,
		cacheKey,
	).Scan(&entry.CacheKey, &entry.Scope, &entry.PayloadBytes, &refreshedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CacheEntry{}, false, nil
	}
	if err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.RefreshedAt = fromMillis(refreshedAt)
	entry.ExpiresAt = fromMillis(expiresAt)
	return entry, true, nil
}

// PutCacheEntry upserts a cache payload by key.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO cache_entries (cache_key, scope, payload_json, refreshed_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    scope = excluded.scope,
		    payload_json = excluded.payload_json,
		    refreshed_at = excluded.refreshed_at,
		    expires_at = excluded.expires_at`,
		entry.CacheKey,
		entry.Scope,
		entry.PayloadBytes,
		toMillis(entry.RefreshedAt),
		toMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a cache entry by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// GetEnquiryList loads the stored enquiry list for a visitor.
func (s *Store) GetEnquiryList(ctx context.Context, visitorID string) (storage.EnquiryRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return storage.EnquiryRecord{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.EnquiryRecord{}, false, fmt.Errorf("storage is not configured")
	}
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return storage.EnquiryRecord{}, false, fmt.Errorf("visitor id is required")
	}

	var record storage.EnquiryRecord
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT visitor_id, payload_json, updated_at FROM enquiry_lists WHERE visitor_id = ?`,
		visitorID,
	).Scan(&record.VisitorID, &record.PayloadBytes, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.EnquiryRecord{}, false, nil
	}
	if err != nil {
		return storage.EnquiryRecord{}, false, fmt.Errorf("get enquiry list: %w", err)
	}
	record.UpdatedAt = fromMillis(updatedAt)
	return record, true, nil
}

// PutEnquiryList replaces the stored enquiry list for a visitor.
func (s *Store) PutEnquiryList(ctx context.Context, record storage.EnquiryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.VisitorID = strings.TrimSpace(record.VisitorID)
	if record.VisitorID == "" {
		return fmt.Errorf("visitor id is required")
	}
	if len(record.PayloadBytes) == 0 {
		return fmt.Errorf("enquiry payload is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO enquiry_lists (visitor_id, payload_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(visitor_id) DO UPDATE SET
		    payload_json = excluded.payload_json,
		    updated_at = excluded.updated_at`,
		record.VisitorID,
		record.PayloadBytes,
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put enquiry list: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ storage.Store = (*Store)(nil)
