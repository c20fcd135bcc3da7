package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrIndexNotFound    = errors.New("index not found")
	ErrIndexLoad        = errors.New("index load failed")
	ErrIndexPersist     = errors.New("index persist failed")
	ErrFileDelete       = errors.New("file delete failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrRootUnreadable   = errors.New("root directory unreadable")
	ErrExhausted        = errors.New("review queue exhausted")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IndexLoadError represents an index that could not be read or decoded
type IndexLoadError struct {
	Location string
	Err      error
}

func (e *IndexLoadError) Error() string {
	return fmt.Sprintf("failed to load index %s: %v", e.Location, e.Err)
}

func (e *IndexLoadError) Unwrap() error {
	return e.Err
}

func (e *IndexLoadError) Is(target error) bool {
	return target == ErrIndexLoad
}

// PersistError represents an index that could not be written.
// The in-memory index keeps the change that failed to save.
type PersistError struct {
	Location string
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save index %s: %v", e.Location, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	return target == ErrIndexPersist
}

// FileDeleteError represents an image file that could not be removed
type FileDeleteError struct {
	Path string
	Err  error
}

func (e *FileDeleteError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Path, e.Err)
}

func (e *FileDeleteError) Unwrap() error {
	return e.Err
}

func (e *FileDeleteError) Is(target error) bool {
	return target == ErrFileDelete
}
