package commands

import (
	"context"
	"path/filepath"

	"imgcurate/internal/application"
	"imgcurate/internal/domain"
)

// fakeLibrary is an in-memory ports.Library
type fakeLibrary struct {
	root    string
	folders []string
	files   map[string][]string
	listErr map[string]error
	rootErr error
	present map[domain.Entry]bool
	size    int64
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		root:    "/library",
		files:   make(map[string][]string),
		listErr: make(map[string]error),
		present: make(map[domain.Entry]bool),
	}
}

func (f *fakeLibrary) addFolder(folder string, names ...string) {
	f.folders = append(f.folders, folder)
	f.files[folder] = append(f.files[folder], names...)
	for _, name := range names {
		f.present[domain.Entry{Folder: folder, Filename: name}] = true
	}
}

func (f *fakeLibrary) Root() string { return f.root }

func (f *fakeLibrary) ListFolders() ([]string, error) {
	if f.rootErr != nil {
		return nil, f.rootErr
	}
	return append([]string(nil), f.folders...), nil
}

func (f *fakeLibrary) ListFiles(folder string) ([]string, error) {
	if err := f.listErr[folder]; err != nil {
		return nil, err
	}
	return append([]string(nil), f.files[folder]...), nil
}

func (f *fakeLibrary) Path(e domain.Entry) string {
	return filepath.Join(f.root, e.Folder, e.Filename)
}

func (f *fakeLibrary) Exists(e domain.Entry) bool { return f.present[e] }

func (f *fakeLibrary) Remove(e domain.Entry) error {
	delete(f.present, e)
	return nil
}

func (f *fakeLibrary) Size(ctx context.Context) (int64, error) { return f.size, ctx.Err() }

// memStore is an in-memory ports.IndexStore
type memStore struct {
	location string
	idx      *domain.ImageIndex
	saves    int
	saveErr  error
}

func newMemStore(location string, idx *domain.ImageIndex) *memStore {
	return &memStore{location: location, idx: idx}
}

func (m *memStore) Load() (*domain.ImageIndex, error) {
	if m.idx == nil {
		return nil, &application.IndexLoadError{Location: m.location, Err: application.ErrIndexNotFound}
	}
	return m.idx.Clone(), nil
}

func (m *memStore) Save(idx *domain.ImageIndex) error {
	if m.saveErr != nil {
		return &application.PersistError{Location: m.location, Err: m.saveErr}
	}
	m.saves++
	m.idx = idx.Clone()
	return nil
}

func (m *memStore) Location() string { return m.location }
func (m *memStore) Close() error     { return nil }

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
