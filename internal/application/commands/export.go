package commands

import (
	"context"
	"fmt"

	"imgcurate/internal/ports"
)

// ExportResult contains the result of an export
type ExportResult struct {
	Folders int
	Images  int
	Message string
}

// ExportCommand copies the index from one store to another
type ExportCommand struct {
	src ports.IndexStore
	dst ports.IndexStore
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(src, dst ports.IndexStore) *ExportCommand {
	return &ExportCommand{
		src: src,
		dst: dst,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if c.src.Location() == c.dst.Location() {
		return nil, fmt.Errorf("source and destination are the same: %s", c.src.Location())
	}

	idx, err := c.src.Load()
	if err != nil {
		return nil, err
	}
	if err := c.dst.Save(idx); err != nil {
		return nil, err
	}

	return &ExportResult{
		Folders: idx.Len(),
		Images:  idx.Count(),
		Message: fmt.Sprintf("Exported %d images in %d folders to %s", idx.Count(), idx.Len(), c.dst.Location()),
	}, nil
}
