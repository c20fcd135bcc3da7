package review

import (
	"context"
	"path/filepath"

	"imgcurate/internal/application"
	"imgcurate/internal/domain"
)

// fakeLibrary is an in-memory ports.Library
type fakeLibrary struct {
	present   map[domain.Entry]bool
	removeErr map[domain.Entry]error
	removed   []domain.Entry
}

func newFakeLibrary(entries ...domain.Entry) *fakeLibrary {
	lib := &fakeLibrary{
		present:   make(map[domain.Entry]bool),
		removeErr: make(map[domain.Entry]error),
	}
	for _, e := range entries {
		lib.present[e] = true
	}
	return lib
}

func (f *fakeLibrary) Root() string                   { return "/library" }
func (f *fakeLibrary) ListFolders() ([]string, error) { return nil, nil }
func (f *fakeLibrary) ListFiles(string) ([]string, error) {
	return nil, nil
}

func (f *fakeLibrary) Path(e domain.Entry) string {
	return filepath.Join("/library", e.Folder, e.Filename)
}

func (f *fakeLibrary) Exists(e domain.Entry) bool { return f.present[e] }

func (f *fakeLibrary) Remove(e domain.Entry) error {
	if err := f.removeErr[e]; err != nil {
		return err
	}
	delete(f.present, e)
	f.removed = append(f.removed, e)
	return nil
}

func (f *fakeLibrary) Size(context.Context) (int64, error) { return 0, nil }

// memStore is an in-memory ports.IndexStore that records every save
type memStore struct {
	idx     *domain.ImageIndex
	saves   int
	saveErr error
	loadErr error
}

func (m *memStore) Load() (*domain.ImageIndex, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.idx == nil {
		return nil, &application.IndexLoadError{Location: "mem", Err: application.ErrIndexNotFound}
	}
	return m.idx.Clone(), nil
}

func (m *memStore) Save(idx *domain.ImageIndex) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.idx = idx.Clone()
	return nil
}

func (m *memStore) Location() string { return "mem" }
func (m *memStore) Close() error     { return nil }
