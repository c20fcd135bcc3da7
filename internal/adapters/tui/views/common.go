package views

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// ContentWidth returns the usable width inside the app padding,
// or fallback before the first window size message
func (s *ViewState) ContentWidth(fallback int) int {
	if s.Width <= 0 {
		return fallback
	}
	return max(s.Width-4, 1)
}

// Truncate shortens s to at most width terminal cells, marking the cut
// with an ellipsis. Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// FormatMB formats a byte count in megabytes with two decimals
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

// Messages for view switching
type SwitchToFoldersMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToReviewMsg struct{}

// OpenViewerMsg asks the app to open an image in the external viewer
type OpenViewerMsg struct {
	Path string
}
