// Package sqlitestore persists offline cache buckets in a SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"sports-hub-service/internal/offline"
)

const driver = "sqlite"

// Store keeps buckets and entries in two tables.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlitestore: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open(driver, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func dsn(path string) string {
	values := url.Values{}
	values.Add("_pragma", "foreign_keys(ON)")
	values.Add("_pragma", "journal_mode(WAL)")
	values.Add("_pragma", "busy_timeout(5000)")
	return fmt.Sprintf("file:%s?%s", path, values.Encode())
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cache_buckets (
			name TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS cache_entries (
			bucket TEXT NOT NULL REFERENCES cache_buckets(name) ON DELETE CASCADE,
			cache_key TEXT NOT NULL,
			url TEXT NOT NULL DEFAULT '',
			status_code INTEGER NOT NULL,
			header TEXT NOT NULL DEFAULT '{}',
			body BLOB,
			stored_at DATETIME NOT NULL,
			PRIMARY KEY (bucket, cache_key)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate offline cache: %w", err)
		}
	}
	return nil
}

func (s *Store) Open(ctx context.Context, name string) (offline.Bucket, error) {
	if _, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO cache_buckets (name) VALUES (?)`, name); err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", name, err)
	}
	return &bucket{db: s.db, name: name}, nil
}

func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM cache_buckets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cache_buckets WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type bucket struct {
	db   *sql.DB
	name string
}

func (b *bucket) Match(ctx context.Context, key string) (offline.StoredResponse, error) {
	var (
		resp     offline.StoredResponse
		header   string
		storedAt string
	)
	err := b.db.QueryRowContext(ctx,
		`SELECT url, status_code, header, body, stored_at FROM cache_entries WHERE bucket = ? AND cache_key = ?`,
		b.name, key,
	).Scan(&resp.URL, &resp.StatusCode, &header, &resp.Body, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return offline.StoredResponse{}, offline.ErrNoMatch
	}
	if err != nil {
		return offline.StoredResponse{}, err
	}
	resp.Header = http.Header{}
	if err := json.Unmarshal([]byte(header), &resp.Header); err != nil {
		return offline.StoredResponse{}, fmt.Errorf("decode header for %s: %w", key, err)
	}
	if resp.StoredAt, err = time.Parse(time.RFC3339Nano, storedAt); err != nil {
		return offline.StoredResponse{}, fmt.Errorf("decode stored_at for %s: %w", key, err)
	}
	return resp, nil
}

func (b *bucket) Put(ctx context.Context, key string, resp offline.StoredResponse) error {
	header, err := json.Marshal(resp.Header)
	if err != nil {
		return err
	}
	_, err = b.db.ExecContext(ctx,
		`INSERT INTO cache_entries (bucket, cache_key, url, status_code, header, body, stored_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (bucket, cache_key) DO UPDATE SET
			url = excluded.url,
			status_code = excluded.status_code,
			header = excluded.header,
			body = excluded.body,
			stored_at = excluded.stored_at`,
		b.name, key, resp.URL, resp.StatusCode, string(header), resp.Body, resp.StoredAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (b *bucket) Keys(ctx context.Context) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT cache_key FROM cache_entries WHERE bucket = ? ORDER BY cache_key`, b.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
