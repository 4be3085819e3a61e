package sound

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var supportedTypes = map[string]bool{
	".mp3": true,
	".wav": true,
}

// Library indexes the sound files in a directory by lowercased base name.
// Lookups hand out fresh FileSound values so the same sound can sit in a
// queue more than once.
type Library struct {
	dir string

	mu    sync.RWMutex
	files map[string]string
}

// NewLibrary creates a library over the given directory. Call Refresh to
// populate it.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir, files: make(map[string]string)}
}

// Refresh re-reads the directory, replacing the index wholesale.
func (l *Library) Refresh() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return errors.Wrapf(err, "read sound directory %q", l.dir)
	}

	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supportedTypes[ext] {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		files[name] = filepath.Join(l.dir, entry.Name())
	}

	l.mu.Lock()
	l.files = files
	l.mu.Unlock()
	return nil
}

// Get returns the sound with the given name, case-insensitively, or nil.
func (l *Library) Get(name string) *FileSound {
	l.mu.RLock()
	defer l.mu.RUnlock()
	path, ok := l.files[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return NewFile(path)
}

// Random returns a random sound from the library, or nil when it is empty.
func (l *Library) Random() *FileSound {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.files) == 0 {
		return nil
	}
	names := make([]string, 0, len(l.files))
	for name := range l.files {
		names = append(names, name)
	}
	return NewFile(l.files[names[rand.Intn(len(names))]])
}

// Names lists the indexed sound names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.files))
	for name := range l.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many sounds are indexed.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.files)
}
