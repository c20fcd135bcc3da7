package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

// Library implements ports.Library on a local directory
type Library struct {
	root string
}

// Ensure Library implements ports.Library
var _ ports.Library = (*Library)(nil)

// NewLibrary creates a library rooted at rootPath
func NewLibrary(rootPath string) *Library {
	return &Library{root: ExpandPath(rootPath)}
}

// ExpandPath expands a leading ~ or ~/ to the home directory and makes the
// path absolute. ~user forms are left alone.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// Root returns the library root directory
func (l *Library) Root() string {
	return l.root
}

// ListFolders returns the visible directories directly under the root, sorted by name
func (l *Library) ListFolders() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read root: %w", err)
	}

	var folders []string
	for _, entry := range entries {
		if domain.IsHidden(entry.Name()) {
			continue
		}
		if !isDir(l.root, entry) {
			continue
		}
		folders = append(folders, entry.Name())
	}

	sort.Strings(folders)
	return folders, nil
}

// ListFiles returns the regular files directly inside a folder, sorted by name.
// Subdirectories are not listed.
func (l *Library) ListFiles(folder string) ([]string, error) {
	dir := filepath.Join(l.root, folder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if !isRegular(dir, entry) {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.Strings(files)
	return files, nil
}

// Path returns root/folder/filename
func (l *Library) Path(entry domain.Entry) string {
	return filepath.Join(l.root, entry.Folder, entry.Filename)
}

func safeEntry(entry domain.Entry) bool {
	return domain.IsSafeName(entry.Folder) && domain.IsSafeName(entry.Filename)
}

// Exists reports whether the entry's file is present. Entries that would
// resolve outside the root are never present.
func (l *Library) Exists(entry domain.Entry) bool {
	if !safeEntry(entry) {
		return false
	}
	_, err := os.Stat(l.Path(entry))
	return err == nil
}

// Remove deletes the entry's file, treating an absent file as already removed
func (l *Library) Remove(entry domain.Entry) error {
	if !safeEntry(entry) {
		return fmt.Errorf("%w: %s", domain.ErrUnsafeName, entry)
	}
	err := os.Remove(l.Path(entry))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Size walks the whole root and sums regular file sizes. Unreadable entries are ignored.
func (l *Library) Size(ctx context.Context) (int64, error) {
	var total int64
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// isDir reports whether entry is a directory, following symlinks
func isDir(parent string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(parent, entry.Name()))
		return err == nil && info.IsDir()
	}
	return entry.IsDir()
}

// isRegular reports whether entry is a regular file, following symlinks
func isRegular(parent string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(parent, entry.Name()))
		return err == nil && info.Mode().IsRegular()
	}
	return entry.Type().IsRegular()
}
