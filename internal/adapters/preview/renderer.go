// Package preview draws images in the terminal with half-block characters
// and reads their metadata for the info panel.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // WebP format support

	"imgcurate/internal/domain"
)

// halfBlock paints the upper half of a cell in the foreground colour and the
// lower half in the background colour, giving two pixels per cell
const halfBlock = "▀"

// MaxSourcePixels bounds the images that are decoded for a preview
const MaxSourcePixels = 40_000_000

// ErrTooLarge is returned for images too big to preview
var ErrTooLarge = errors.New("image too large to preview")

// Renderer implements ports.Previewer
type Renderer struct {
	maxPixels int
}

// NewRenderer creates a new preview renderer
func NewRenderer() *Renderer {
	return &Renderer{maxPixels: MaxSourcePixels}
}

// Render decodes the image at path and draws it within width columns and
// height rows. Images are shrunk to fit but never enlarged.
func (r *Renderer) Render(path string, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", nil
	}

	if cfg, err := decodeConfig(path); err == nil && cfg.Width*cfg.Height > r.maxPixels {
		return "", fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}

	return renderImage(img, width, height), nil
}

// Describe reads the format, dimensions, file size and capture date of the
// image at path. Formats without a decoder still report their size.
func (r *Renderer) Describe(path string) (*domain.ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	info := &domain.ImageInfo{
		Format: strings.TrimPrefix(domain.Extension(path), "."),
		Size:   stat.Size(),
	}

	if cfg, format, err := decodeConfigFormat(path); err == nil {
		info.Format = format
		info.Width = cfg.Width
		info.Height = cfg.Height
	}

	if taken, err := exifDate(path); err == nil {
		info.Taken = taken
	}

	return info, nil
}

// renderImage scales img into a width x (2*height) pixel box and emits one
// line per pair of pixel rows
func renderImage(img image.Image, width, height int) string {
	bounds := img.Bounds()
	maxW, maxH := width, height*2
	if bounds.Dx() > maxW || bounds.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			b.WriteString(style.Render(halfBlock))
		}
	}
	return b.String()
}

// hexColor converts a pixel to a lipgloss colour. Transparent pixels are
// blended against black.
func hexColor(c color.Color) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	blend := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(n.A) / 255)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", blend(n.R), blend(n.G), blend(n.B)))
}

func decodeConfig(path string) (image.Config, error) {
	cfg, _, err := decodeConfigFormat(path)
	return cfg, err
}

func decodeConfigFormat(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()

	return image.DecodeConfig(f)
}

// exifDate extracts the capture date from a photo's EXIF metadata
func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}
