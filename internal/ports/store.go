package ports

import "imgcurate/internal/domain"

// IndexStore persists an ImageIndex. Every Save writes the complete index.
type IndexStore interface {
	// Load reads the stored index. A store that was never written returns
	// an error matching application.ErrIndexNotFound.
	Load() (*domain.ImageIndex, error)

	// Save replaces the stored index with idx
	Save(idx *domain.ImageIndex) error

	// Location describes where the index lives (file path or database path)
	Location() string

	Close() error
}
