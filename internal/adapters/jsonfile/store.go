package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"imgcurate/internal/application"
	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

// DefaultFileName is the index file name used when none is configured
const DefaultFileName = "images.json"

// Store implements ports.IndexStore as a single JSON document
type Store struct {
	path string
}

// Ensure Store implements IndexStore
var _ ports.IndexStore = (*Store)(nil)

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Location returns the index file path
func (s *Store) Location() string {
	return s.path
}

// Load reads and decodes the index file
func (s *Store) Load() (*domain.ImageIndex, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = application.ErrIndexNotFound
		}
		return nil, &application.IndexLoadError{Location: s.path, Err: err}
	}

	idx := domain.NewImageIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, &application.IndexLoadError{Location: s.path, Err: err}
	}
	return idx, nil
}

// Save writes the whole index with two-space indentation. The document is
// written to a temporary file next to the index and renamed over it.
func (s *Store) Save(idx *domain.ImageIndex) error {
	data, err := Encode(idx)
	if err != nil {
		return &application.PersistError{Location: s.path, Err: err}
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return &application.PersistError{Location: s.path, Err: err}
	}
	return nil
}

// Close is a no-op; the store holds no open handles
func (s *Store) Close() error {
	return nil
}

// Encode renders the index as indented JSON without HTML escaping
func Encode(idx *domain.ImageIndex) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(idx); err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace index: %w", err)
	}
	return nil
}
