package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// ImageExtensions maps lowercase file extensions to whether they are indexed as images
var ImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
	".tiff": true,
	".tif":  true,
}

// Extension returns the lowercase extension of a filename including the dot.
// A name that is nothing but an extension (".png") has no extension.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

// IsImageFile reports whether a filename carries an allowed image extension
func IsImageFile(name string) bool {
	return ImageExtensions[Extension(name)]
}

// IsHidden reports whether a directory entry name is hidden
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ImageInfo describes a decoded image for display
type ImageInfo struct {
	Format string
	Width  int
	Height int
	Size   int64
	Taken  time.Time // zero when the image carries no capture date
}
