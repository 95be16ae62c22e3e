package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
)

// Store persists the session record. Implementations must tolerate partial or
// absent data: a fresh install has none of the four entries.
type Store interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}

// FileStore keeps the session as a small JSON file. Writes go through a
// temp-file rename so a crash mid-write never leaves a truncated session.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore constructs a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored session. A missing or unreadable file is an empty
// session, not an error.
func (f *FileStore) Load(ctx context.Context) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, nil
		}
		return models.Session{}, err
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt session file is treated as "not authenticated".
		return models.Session{}, nil
	}
	return s, nil
}

// Save persists the session atomically.
func (f *FileStore) Save(ctx context.Context, s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()          //nolint:errcheck
		os.Remove(tmpName)   //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return err
	}
	return os.Rename(tmpName, f.path)
}

// Clear removes the session file. Clearing an absent session succeeds.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
