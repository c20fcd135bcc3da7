package commands

import (
	"context"
	"fmt"

	"imgcurate/internal/ports"
)

// StatsResult contains index totals and the on-disk size of the library
type StatsResult struct {
	Folders   int
	Images    int
	SizeBytes int64
}

// SizeMB returns the library size in megabytes
func (r *StatsResult) SizeMB() float64 {
	return float64(r.SizeBytes) / (1024 * 1024)
}

// StatsCommand reports index totals and library size
type StatsCommand struct {
	lib   ports.Library
	store ports.IndexStore
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(lib ports.Library, store ports.IndexStore) *StatsCommand {
	return &StatsCommand{
		lib:   lib,
		store: store,
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	idx, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	size, err := c.lib.Size(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to measure %s: %w", c.lib.Root(), err)
	}

	return &StatsResult{
		Folders:   idx.Len(),
		Images:    idx.Count(),
		SizeBytes: size,
	}, nil
}
