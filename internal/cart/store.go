package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"boutique/internal/models"
)

// Store is the persistence port for the cart snapshot. Implementations
// must treat absent state as an empty cart.
type Store interface {
	Load() ([]models.CartLine, error)
	Save(lines []models.CartLine) error
	Clear() error
}

// FileStore persists the cart snapshot as a JSON file, the durable
// local-storage analog for a reloadable session.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// Load reads the stored snapshot. A missing file or malformed content
// yields an empty cart, never an error: corrupt local state resets
// silently instead of crashing the engine.
func (s *FileStore) Load() ([]models.CartLine, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, nil
	}
	return lines, nil
}

// Save writes the full snapshot, replacing any previous one.
func (s *FileStore) Save(lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return nil
}

// Clear removes the stored snapshot entirely.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear cart file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store used by tests and by sessions that
// opt out of durable persistence.
type MemoryStore struct {
	lines []models.CartLine
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the held snapshot.
func (s *MemoryStore) Load() ([]models.CartLine, error) {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

// Save replaces the held snapshot.
func (s *MemoryStore) Save(lines []models.CartLine) error {
	s.lines = make([]models.CartLine, len(lines))
	copy(s.lines, lines)
	return nil
}

// Clear drops the held snapshot.
func (s *MemoryStore) Clear() error {
	s.lines = nil
	return nil
}
