package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sampleIndex() *ImageIndex {
	idx := NewImageIndex()
	idx.Set("alpha", []string{"a.png", "b.jpg"})
	idx.Set("beta", []string{"c.gif"})
	return idx
}

func TestImageIndex_Flatten(t *testing.T) {
	idx := sampleIndex()

	got := idx.Flatten()
	want := []Entry{
		{Folder: "alpha", Filename: "a.png"},
		{Folder: "alpha", Filename: "b.jpg"},
		{Folder: "beta", Filename: "c.gif"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
	if len(got) != idx.Count() {
		t.Errorf("Flatten() returned %d entries, Count() = %d", len(got), idx.Count())
	}
}

func TestImageIndex_FlattenLengthMatchesCount(t *testing.T) {
	tests := []struct {
		name    string
		folders map[string][]string
		order   []string
	}{
		{name: "empty", folders: map[string][]string{}, order: nil},
		{
			name:    "single folder",
			folders: map[string][]string{"a": {"1.png", "2.png", "3.png"}},
			order:   []string{"a"},
		},
		{
			name: "several folders",
			folders: map[string][]string{
				"a": {"1.png"},
				"b": {"1.png", "2.gif"},
				"c": {"x.tif", "y.tiff", "z.webp", "w.svg"},
			},
			order: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewImageIndex()
			want := 0
			for _, folder := range tt.order {
				idx.Set(folder, tt.folders[folder])
				want += len(tt.folders[folder])
			}

			entries := idx.Flatten()
			if len(entries) != want {
				t.Fatalf("expected %d entries, got %d", want, len(entries))
			}

			// Folder-then-filename order
			i := 0
			for _, folder := range tt.order {
				for _, name := range tt.folders[folder] {
					if entries[i] != (Entry{Folder: folder, Filename: name}) {
						t.Errorf("entry %d = %v, want %s/%s", i, entries[i], folder, name)
					}
					i++
				}
			}
		})
	}
}

func TestImageIndex_Remove(t *testing.T) {
	idx := sampleIndex()

	if !idx.Remove(Entry{Folder: "beta", Filename: "c.gif"}) {
		t.Fatal("expected Remove to report removal")
	}
	if got := idx.Folders(); !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Errorf("expected emptied folder to be dropped, folders = %v", got)
	}

	if !idx.Remove(Entry{Folder: "alpha", Filename: "a.png"}) {
		t.Fatal("expected Remove to report removal")
	}
	if got := idx.Files("alpha"); !reflect.DeepEqual(got, []string{"b.jpg"}) {
		t.Errorf("Files(alpha) = %v, want [b.jpg]", got)
	}

	if idx.Remove(Entry{Folder: "alpha", Filename: "missing.png"}) {
		t.Error("expected Remove of unknown file to report false")
	}
	if idx.Remove(Entry{Folder: "gamma", Filename: "a.png"}) {
		t.Error("expected Remove from unknown folder to report false")
	}
}

func TestImageIndex_RemoveKeepsFolderPosition(t *testing.T) {
	idx := NewImageIndex()
	idx.Set("a", []string{"1.png", "2.png"})
	idx.Set("b", []string{"1.png"})
	idx.Set("c", []string{"1.png"})

	idx.Remove(Entry{Folder: "a", Filename: "1.png"})

	if got := idx.Folders(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("folder order changed after removal: %v", got)
	}
}

func TestImageIndex_SetEmptyRemovesFolder(t *testing.T) {
	idx := sampleIndex()
	idx.Set("alpha", nil)

	if idx.Len() != 1 {
		t.Errorf("expected 1 folder, got %d", idx.Len())
	}
	if idx.Contains(Entry{Folder: "alpha", Filename: "a.png"}) {
		t.Error("alpha should no longer be present")
	}
}

func TestImageIndex_FilesReturnsCopy(t *testing.T) {
	idx := sampleIndex()
	files := idx.Files("alpha")
	files[0] = "changed.png"

	if idx.Files("alpha")[0] != "a.png" {
		t.Error("mutating the returned slice changed the index")
	}
}

func TestImageIndex_JSONKeepsDocumentOrder(t *testing.T) {
	doc := `{"zeta": ["b.png", "a.png"], "alpha": ["x.jpg"], "empty": []}`

	idx := NewImageIndex()
	if err := json.Unmarshal([]byte(doc), idx); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if got := idx.Folders(); !reflect.DeepEqual(got, []string{"zeta", "alpha"}) {
		t.Errorf("Folders() = %v, want [zeta alpha]", got)
	}
	if got := idx.Files("zeta"); !reflect.DeepEqual(got, []string{"b.png", "a.png"}) {
		t.Errorf("Files(zeta) = %v, want document order", got)
	}

	data, err := json.Marshal(idx)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)
	if strings.Index(out, "zeta") > strings.Index(out, "alpha") {
		t.Errorf("expected zeta before alpha in %s", out)
	}
	if strings.Contains(out, "empty") {
		t.Errorf("empty folder should not be written: %s", out)
	}

	again := NewImageIndex()
	if err := json.Unmarshal(data, again); err != nil {
		t.Fatalf("Unmarshal of marshaled index failed: %v", err)
	}
	if !reflect.DeepEqual(again.Flatten(), idx.Flatten()) {
		t.Errorf("round trip changed entries: %v vs %v", again.Flatten(), idx.Flatten())
	}
}

func TestImageIndex_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewImageIndex())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected {}, got %s", data)
	}
}

func TestImageIndex_UnmarshalRejectsNonObject(t *testing.T) {
	idx := NewImageIndex()
	if err := json.Unmarshal([]byte(`["a.png"]`), idx); err == nil {
		t.Error("expected error for non-object document")
	}
}

func TestIsSafeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"my cats", true},
		{"..png", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../a.png", false},
		{"sub/a.png", false},
		{"/etc/passwd", false},
	}

	for _, tt := range tests {
		if got := IsSafeName(tt.name); got != tt.want {
			t.Errorf("IsSafeName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestImageIndex_UnmarshalRejectsUnsafeNames(t *testing.T) {
	docs := []string{
		`{"alpha": ["../../precious.png"]}`,
		`{"..": ["a.png"]}`,
		`{"alpha/beta": ["a.png"]}`,
	}

	for _, doc := range docs {
		idx := NewImageIndex()
		err := json.Unmarshal([]byte(doc), idx)
		if !errors.Is(err, ErrUnsafeName) {
			t.Errorf("Unmarshal(%s) error = %v, want ErrUnsafeName", doc, err)
		}
		if idx.Len() != 0 {
			t.Errorf("Unmarshal(%s) should leave the index untouched", doc)
		}
	}
}

func TestImageIndex_Clone(t *testing.T) {
	idx := sampleIndex()
	clone := idx.Clone()
	clone.Remove(Entry{Folder: "beta", Filename: "c.gif"})

	if !idx.Contains(Entry{Folder: "beta", Filename: "c.gif"}) {
		t.Error("removing from clone affected original")
	}
}
