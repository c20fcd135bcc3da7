package ports

import (
	"context"

	"imgcurate/internal/domain"
)

// Library defines the interface to the image collection on disk: a root
// directory holding one level of category folders
type Library interface {
	// Root returns the absolute root directory
	Root() string

	// Listing
	ListFolders() ([]string, error)
	ListFiles(folder string) ([]string, error)

	// Path returns root/folder/filename. No other location is tried.
	Path(entry domain.Entry) string

	// Exists reports whether the entry's file is present
	Exists(entry domain.Entry) bool

	// Remove deletes the entry's file. A file that is already gone is not an error.
	Remove(entry domain.Entry) error

	// Size returns the total size in bytes of all files under the root
	Size(ctx context.Context) (int64, error)
}
