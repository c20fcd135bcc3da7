package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// EnvViewer names the environment variable holding the preferred viewer
const EnvViewer = "IMGCURATE_VIEWER"

// Opener implements ports.ImageViewer
type Opener struct {
	viewer string
}

// NewOpener creates a new image opener. An empty viewer falls back to
// $IMGCURATE_VIEWER and then to the platform's default opener.
func NewOpener(viewer string) *Opener {
	return &Opener{viewer: viewer}
}

// Open opens an image in the external viewer
func (o *Opener) Open(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening an image in the viewer
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	viewer := o.findViewer()
	if viewer == "" {
		return nil, fmt.Errorf("no image viewer found: set $%s environment variable", EnvViewer)
	}

	// Allow viewers configured with arguments, e.g. "feh --scale-down"
	fields := strings.Fields(viewer)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findViewer returns the viewer to use
func (o *Opener) findViewer() string {
	if strings.TrimSpace(o.viewer) != "" {
		return o.viewer
	}

	if viewer := os.Getenv(EnvViewer); strings.TrimSpace(viewer) != "" {
		return viewer
	}

	// Try platform openers
	viewers := []string{"xdg-open", "feh", "eog"}
	if runtime.GOOS == "darwin" {
		viewers = []string{"open"}
	}
	for _, viewer := range viewers {
		if path, err := exec.LookPath(viewer); err == nil {
			return path
		}
	}

	return ""
}
