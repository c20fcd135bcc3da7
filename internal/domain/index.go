package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry identifies one image by the folder it lives in and its filename
type Entry struct {
	Folder   string
	Filename string
}

// String returns the entry as folder/filename
func (e Entry) String() string {
	return e.Folder + "/" + e.Filename
}

// ErrUnsafeName marks a folder or filename that is not a single path
// element inside the library root
var ErrUnsafeName = errors.New("unsafe index name")

// IsSafeName reports whether name is one path element that stays inside
// its parent directory
func IsSafeName(name string) bool {
	return name != "." && filepath.IsLocal(name) && filepath.Base(name) == name
}

// ImageIndex maps folder names to the image filenames they contain.
// Folder and filename order is preserved exactly as inserted or loaded,
// and a folder never maps to an empty list.
type ImageIndex struct {
	folders *orderedmap.OrderedMap[string, []string]
}

// NewImageIndex creates an empty index
func NewImageIndex() *ImageIndex {
	return &ImageIndex{folders: orderedmap.New[string, []string]()}
}

func (x *ImageIndex) ensure() {
	if x.folders == nil {
		x.folders = orderedmap.New[string, []string]()
	}
}

// Set assigns the filenames of a folder. A new folder is appended after the
// existing ones; an existing folder keeps its position. Setting an empty
// list removes the folder.
func (x *ImageIndex) Set(folder string, files []string) {
	x.ensure()
	if len(files) == 0 {
		x.folders.Delete(folder)
		return
	}
	x.folders.Set(folder, slices.Clone(files))
}

// Files returns a copy of the filenames recorded for a folder
func (x *ImageIndex) Files(folder string) []string {
	x.ensure()
	files, _ := x.folders.Get(folder)
	return slices.Clone(files)
}

// Folders returns the folder names in index order
func (x *ImageIndex) Folders() []string {
	x.ensure()
	out := make([]string, 0, x.folders.Len())
	for pair := x.folders.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of folders
func (x *ImageIndex) Len() int {
	x.ensure()
	return x.folders.Len()
}

// Count returns the total number of images across all folders
func (x *ImageIndex) Count() int {
	x.ensure()
	total := 0
	for pair := x.folders.Oldest(); pair != nil; pair = pair.Next() {
		total += len(pair.Value)
	}
	return total
}

// Contains reports whether the entry is recorded in the index
func (x *ImageIndex) Contains(e Entry) bool {
	x.ensure()
	files, ok := x.folders.Get(e.Folder)
	return ok && slices.Contains(files, e.Filename)
}

// Remove deletes the first occurrence of the entry and drops its folder once
// the folder is empty. It reports whether anything was removed.
func (x *ImageIndex) Remove(e Entry) bool {
	x.ensure()
	files, ok := x.folders.Get(e.Folder)
	if !ok {
		return false
	}
	i := slices.Index(files, e.Filename)
	if i < 0 {
		return false
	}

	remaining := slices.Delete(slices.Clone(files), i, i+1)
	if len(remaining) == 0 {
		x.folders.Delete(e.Folder)
	} else {
		x.folders.Set(e.Folder, remaining)
	}
	return true
}

// Flatten lists every entry in folder-then-filename index order
func (x *ImageIndex) Flatten() []Entry {
	x.ensure()
	entries := make([]Entry, 0, x.Count())
	for pair := x.folders.Oldest(); pair != nil; pair = pair.Next() {
		for _, name := range pair.Value {
			entries = append(entries, Entry{Folder: pair.Key, Filename: name})
		}
	}
	return entries
}

// Clone returns a deep copy of the index
func (x *ImageIndex) Clone() *ImageIndex {
	x.ensure()
	out := NewImageIndex()
	for pair := x.folders.Oldest(); pair != nil; pair = pair.Next() {
		out.folders.Set(pair.Key, slices.Clone(pair.Value))
	}
	return out
}

// MarshalJSON encodes the index as a JSON object, keeping folder order.
// Names are written without HTML escaping.
func (x *ImageIndex) MarshalJSON() ([]byte, error) {
	x.ensure()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for pair := x.folders.Oldest(); pair != nil; pair = pair.Next() {
		if pair != x.folders.Oldest() {
			buf.WriteByte(',')
		}
		if err := enc.Encode(pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(pair.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of folder -> filenames, keeping the
// order of the document. Folders with no filenames are dropped.
func (x *ImageIndex) UnmarshalJSON(data []byte) error {
	folders := orderedmap.New[string, []string]()
	if err := folders.UnmarshalJSON(data); err != nil {
		return err
	}

	for pair := folders.Oldest(); pair != nil; {
		next := pair.Next()
		if len(pair.Value) == 0 {
			folders.Delete(pair.Key)
		}
		pair = next
	}

	loaded := &ImageIndex{folders: folders}
	if err := loaded.Validate(); err != nil {
		return err
	}

	x.folders = folders
	return nil
}

// Validate checks that every folder and filename is a single path element
func (x *ImageIndex) Validate() error {
	x.ensure()
	for pair := x.folders.Oldest(); pair != nil; pair = pair.Next() {
		if !IsSafeName(pair.Key) {
			return fmt.Errorf("%w: folder %q", ErrUnsafeName, pair.Key)
		}
		for _, file := range pair.Value {
			if !IsSafeName(file) {
				return fmt.Errorf("%w: file %q in folder %q", ErrUnsafeName, file, pair.Key)
			}
		}
	}
	return nil
}
