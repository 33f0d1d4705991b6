// Package keyvalue implements a file-backed JSON key-value store.
//
// Each key is persisted as a separate JSON file under the store directory.
// Writes go through a temporary file and rename so a crash mid-write never
// corrupts the previous snapshot. A single mutex serializes access; there is
// no cross-process coordination (last writer wins).
package keyvalue

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrKeyNotFound indicates that no record is persisted under the given key.
var ErrKeyNotFound = errors.New("key not found")

// Store reads and writes JSON-serialized records by key.
type Store struct {
	mu  sync.Mutex
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the record stored under key into dst.
func (s *Store) Get(key string, dst any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrKeyNotFound
		}

		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(dst)
}

// Set serializes v and atomically replaces the record stored under key.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, s.path(key))
}

// Delete removes the record stored under key. Deleting an absent key is not
// an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
