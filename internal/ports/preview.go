package ports

import "imgcurate/internal/domain"

// Previewer renders images for a terminal
type Previewer interface {
	// Render draws the image scaled to fit within width columns and height rows
	Render(path string, width, height int) (string, error)

	// Describe reads format, dimensions, size and capture date
	Describe(path string) (*domain.ImageInfo, error)
}
