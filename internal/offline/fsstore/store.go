// Package fsstore persists offline cache buckets as JSON files on disk.
package fsstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"sports-hub-service/internal/offline"
)

// Store keeps one directory per bucket and one file per cached response.
type Store struct {
	basePath string
	mu       sync.RWMutex
}

type entry struct {
	Key      string                 `json:"key"`
	Response offline.StoredResponse `json:"response"`
}

// New constructs a store rooted at basePath, creating it if needed.
func New(basePath string) (*Store, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("fsstore: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("fsstore: create %s: %w", basePath, err)
	}
	if _, err := readManifest(basePath); err != nil {
		return nil, fmt.Errorf("fsstore: read manifest: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// BasePath exposes the store root.
func (s *Store) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *Store) Open(_ context.Context, name string) (offline.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := readManifest(s.basePath)
	if err != nil {
		return nil, err
	}
	dir := bucketDir(s.basePath, name)
	if _, ok := m.Buckets[name]; !ok {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		m.Buckets[name] = filepath.Base(dir)
		if err := writeManifest(s.basePath, m); err != nil {
			return nil, err
		}
	}
	return &bucket{store: s, dir: dir}, nil
}

func (s *Store) Names(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := readManifest(s.basePath)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m.Buckets))
	for name := range m.Buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := readManifest(s.basePath)
	if err != nil {
		return false, err
	}
	if _, ok := m.Buckets[name]; !ok {
		return false, nil
	}
	delete(m.Buckets, name)
	if err := writeManifest(s.basePath, m); err != nil {
		return false, err
	}
	if err := os.RemoveAll(bucketDir(s.basePath, name)); err != nil {
		return true, err
	}
	return true, nil
}

type bucket struct {
	store *Store
	dir   string
}

func (b *bucket) Match(_ context.Context, key string) (offline.StoredResponse, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	e, err := decodeEntry(entryPath(b.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return offline.StoredResponse{}, offline.ErrNoMatch
	}
	if err != nil {
		return offline.StoredResponse{}, err
	}
	return e.Response, nil
}

func (b *bucket) Put(_ context.Context, key string, resp offline.StoredResponse) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	data, err := json.MarshalIndent(entry{Key: key, Response: resp}, "", "  ")
	if err != nil {
		return err
	}
	target := entryPath(b.dir, key)
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	return writeAtomic(target, data)
}

func (b *bucket) Keys(context.Context) ([]string, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	files, err := os.ReadDir(b.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		e, err := decodeEntry(filepath.Join(b.dir, f.Name()))
		if err != nil {
			return nil, err
		}
		keys = append(keys, e.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

func decodeEntry(path string) (entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return entry{}, err
	}
	defer f.Close()
	var e entry
	if err := json.NewDecoder(f).Decode(&e); err != nil {
		return entry{}, fmt.Errorf("fsstore: decode %s: %w", filepath.Base(path), err)
	}
	return e, nil
}
