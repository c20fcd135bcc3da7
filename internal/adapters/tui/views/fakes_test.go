package views

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"imgcurate/internal/application/review"
	"imgcurate/internal/domain"
	"imgcurate/internal/logging"
)

type fakeLibrary struct {
	present map[domain.Entry]bool
	removed []domain.Entry
	size    int64
}

func newFakeLibrary(entries ...domain.Entry) *fakeLibrary {
	lib := &fakeLibrary{present: make(map[domain.Entry]bool)}
	for _, e := range entries {
		lib.present[e] = true
	}
	return lib
}

func (f *fakeLibrary) Root() string                       { return "/library" }
func (f *fakeLibrary) ListFolders() ([]string, error)     { return nil, nil }
func (f *fakeLibrary) ListFiles(string) ([]string, error) { return nil, nil }
func (f *fakeLibrary) Exists(e domain.Entry) bool         { return f.present[e] }
func (f *fakeLibrary) Size(context.Context) (int64, error) {
	return f.size, nil
}

func (f *fakeLibrary) Path(e domain.Entry) string {
	return filepath.Join("/library", e.Folder, e.Filename)
}

func (f *fakeLibrary) Remove(e domain.Entry) error {
	delete(f.present, e)
	f.removed = append(f.removed, e)
	return nil
}

type memStore struct {
	idx *domain.ImageIndex
}

func (m *memStore) Load() (*domain.ImageIndex, error) { return m.idx.Clone(), nil }
func (m *memStore) Save(idx *domain.ImageIndex) error {
	m.idx = idx.Clone()
	return nil
}
func (m *memStore) Location() string { return "mem" }
func (m *memStore) Close() error     { return nil }

type fakePreviewer struct {
	renders int
}

func (p *fakePreviewer) Render(path string, width, height int) (string, error) {
	p.renders++
	return "PREVIEW " + filepath.Base(path), nil
}

func (p *fakePreviewer) Describe(path string) (*domain.ImageInfo, error) {
	return &domain.ImageInfo{Format: "png", Width: 640, Height: 480, Size: 2 * 1024 * 1024}, nil
}

var (
	alphaA = domain.Entry{Folder: "alpha", Filename: "a.png"}
	alphaB = domain.Entry{Folder: "alpha", Filename: "b.jpg"}
	betaC  = domain.Entry{Folder: "beta", Filename: "c.gif"}
)

func testIndex() *domain.ImageIndex {
	idx := domain.NewImageIndex()
	idx.Set("alpha", []string{"a.png", "b.jpg"})
	idx.Set("beta", []string{"c.gif"})
	return idx
}

// newTestReview opens a session over testIndex and wraps it in a review view
func newTestReview(t *testing.T, lib *fakeLibrary, opts ReviewOptions) (*ReviewModel, *memStore) {
	t.Helper()

	store := &memStore{idx: testIndex()}
	session, state, err := review.Open(lib, store, review.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	opts.Logger = logging.Discard()
	m := NewReviewModel(session, state, lib, &fakePreviewer{}, opts)
	drive(m, m.Init())
	return m, store
}

// drive runs cmd and feeds every message it yields back into m until no
// commands remain. Spinner ticks are dropped so the loop terminates.
func drive(m tea.Model, cmd tea.Cmd) []tea.Msg {
	var msgs []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg:
		default:
			msgs = append(msgs, msg)
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
	return msgs
}

func press(k string) tea.KeyMsg {
	switch k {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
