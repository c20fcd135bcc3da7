package views

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"imgcurate/internal/domain"
)

func TestFoldersModel_Load(t *testing.T) {
	m := NewFoldersModel()
	m.Load(testIndex(), "beta")

	want := []FolderRow{{Folder: "alpha", Images: 2}, {Folder: "beta", Images: 1}}
	if !reflect.DeepEqual(m.Rows(), want) {
		t.Errorf("Rows() = %v, want %v", m.Rows(), want)
	}
	if m.paginator.Cursor() != 1 {
		t.Errorf("cursor should start on the current folder, got %d", m.paginator.Cursor())
	}

	view := m.View()
	for _, want := range []string{"2 folders, 3 images left", "▶ beta", "alpha"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestFoldersModel_Empty(t *testing.T) {
	m := NewFoldersModel()
	m.Load(domain.NewImageIndex(), "")

	if !strings.Contains(m.View(), "The index is empty.") {
		t.Error("expected empty message")
	}
}

func TestFoldersModel_Paging(t *testing.T) {
	idx := domain.NewImageIndex()
	for i := 0; i < 25; i++ {
		idx.Set(fmt.Sprintf("folder%02d", i), []string{"a.png"})
	}

	m := NewFoldersModel()
	m.SetSize(80, 19) // ten rows per page
	m.Load(idx, "")

	if !strings.Contains(m.View(), "Page 1 of 3") {
		t.Errorf("expected first page, got:\n%s", m.View())
	}

	m.Update(press("l"))
	if m.paginator.Cursor() != 10 || !strings.Contains(m.View(), "Page 2 of 3") {
		t.Errorf("expected second page, cursor = %d", m.paginator.Cursor())
	}

	m.Update(press("k"))
	if m.paginator.Cursor() != 9 || !strings.Contains(m.View(), "Page 1 of 3") {
		t.Errorf("moving up should return to the first page, cursor = %d", m.paginator.Cursor())
	}
}

func TestFoldersModel_Close(t *testing.T) {
	for _, k := range []string{"esc", "f", "q"} {
		m := NewFoldersModel()
		_, cmd := m.Update(press(k))
		if cmd == nil {
			t.Fatalf("%s: expected command", k)
		}
		if _, ok := cmd().(SwitchToReviewMsg); !ok {
			t.Errorf("%s: expected SwitchToReviewMsg", k)
		}
	}
}
