package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store persists named collections as pretty-printed JSON array files, one
// file per collection, rewritten wholesale on every mutation. There is no
// partial append; a save replaces the entire collection.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %q: %w", dir, err)
	}

	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Ensure seeds an empty array file for every named collection that does not
// exist yet, so a fresh deployment starts from valid JSON.
func (s *Store) Ensure(collections ...string) error {
	for _, collection := range collections {
		path := s.path(collection)

		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat collection %q: %w", collection, err)
		}

		if err := s.write(collection, []byte("[]")); err != nil {
			return err
		}
	}

	return nil
}

// Mutate runs fn while holding the collection's lock, serializing
// load-mutate-save cycles so two concurrent writers cannot overwrite each
// other's append.
func (s *Store) Mutate(collection string, fn func() error) error {
	lock := s.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	return fn()
}

// Load reads the whole collection. A missing or unparseable file yields an
// empty collection: corrupt data is treated as no data, with a logged
// warning, never as a request failure.
func Load[T any](s *Store, collection string) []T {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("warning: failed to read collection %q, treating as empty: %v", collection, err)
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("warning: collection %q holds corrupt JSON, treating as empty: %v", collection, err)
		return nil
	}

	return records
}

// Save overwrites the whole collection. The bytes go through a temp file and
// a rename so a reader never observes a half-written array.
func Save[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %q: %w", collection, err)
	}

	return s.write(collection, data)
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}

	return lock
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) write(collection string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for collection %q: %w", collection, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection %q: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for collection %q: %w", collection, err)
	}

	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection %q: %w", collection, err)
	}

	return nil
}
