// Package storage persists guild binding records as a single JSON document
// on disk. The whole collection is rewritten on every save; writes go to a
// temp file first and are renamed into place, so a crash mid-write never
// corrupts the previous valid file.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

// BindingStore is a whole-file voice.StateStore. Concurrent saves are
// serialized by a mutex so interleaved writers cannot race the rename.
type BindingStore struct {
	mu   sync.Mutex
	path string
}

// NewBindingStore creates a store backed by the given file path. The file
// does not need to exist yet.
func NewBindingStore(path string) *BindingStore {
	return &BindingStore{path: path}
}

// Load reads the full binding collection. A missing file means nothing has
// been saved yet and yields an empty collection, not an error.
func (s *BindingStore) Load() ([]voice.SaveState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read bindings file")
	}

	var states []voice.SaveState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, errors.Wrapf(err, "parse bindings file %s", s.path)
	}
	return states, nil
}

// Save overwrites the binding collection atomically.
func (s *BindingStore) Save(states []voice.SaveState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if states == nil {
		states = []voice.SaveState{}
	}

	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode bindings")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create bindings directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp bindings file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temp bindings file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "sync temp bindings file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp bindings file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "replace bindings file")
	}
	return nil
}
