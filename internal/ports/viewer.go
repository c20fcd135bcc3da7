package ports

import "os/exec"

// ImageViewer defines the interface for opening an image in an external program
type ImageViewer interface {
	// Open opens the image and waits for the viewer command to return
	Open(path string) error

	// Command returns an exec.Cmd that opens the image.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
