// Package history keeps a small, capped list of saved project snapshots so
// a generated document can be reloaded with its layout settings intact.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"editorial/internal/domain/models"
)

// historyFile is the on-disk snapshot list.
const historyFile = "editorial_projects.json"

// Store persists the full snapshot list. Save always replaces the whole
// list; a failed write must leave the previous list readable.
type Store interface {
	Load() ([]models.SavedProject, error)
	Save(projects []models.SavedProject) error
}

// MemoryStore keeps snapshots in memory. Used in tests and as a fallback
// when no data directory is configured.
type MemoryStore struct {
	mu       sync.Mutex
	projects []models.SavedProject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]models.SavedProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavedProject(nil), s.projects...), nil
}

func (s *MemoryStore) Save(projects []models.SavedProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]models.SavedProject(nil), projects...)
	return nil
}

// FileStore persists snapshots as a single JSON file under dir. Writes go
// through a temp file and rename so a crash mid-write never corrupts the
// list.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, historyFile)
}

func (s *FileStore) Load() ([]models.SavedProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var projects []models.SavedProject
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return projects, nil
}

func (s *FileStore) Save(projects []models.SavedProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, historyFile+".*")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp history: %w", err)
	}
	if err := os.Rename(tmpName, s.path()); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
