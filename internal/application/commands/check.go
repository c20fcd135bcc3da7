package commands

import (
	"context"
	"fmt"
	"log/slog"

	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

// CheckResult contains the entries whose files are missing
type CheckResult struct {
	Checked int
	Missing []domain.Entry
	Pruned  bool
	Message string
}

// CheckCommand looks for index entries whose file no longer exists and,
// with Prune set, removes them from the index and saves it
type CheckCommand struct {
	lib    ports.Library
	store  ports.IndexStore
	logger *slog.Logger
	Prune  bool
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(lib ports.Library, store ports.IndexStore, prune bool, logger *slog.Logger) *CheckCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckCommand{
		lib:    lib,
		store:  store,
		logger: logger,
		Prune:  prune,
	}
}

// Execute runs the check command
func (c *CheckCommand) Execute(ctx context.Context) (*CheckResult, error) {
	idx, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	result := &CheckResult{}
	for _, entry := range idx.Flatten() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Checked++
		if !c.lib.Exists(entry) {
			result.Missing = append(result.Missing, entry)
		}
	}

	if !c.Prune || len(result.Missing) == 0 {
		result.Message = fmt.Sprintf("%d of %d entries missing", len(result.Missing), result.Checked)
		return result, nil
	}

	for _, entry := range result.Missing {
		idx.Remove(entry)
		c.logger.Info("Pruned missing entry", "folder", entry.Folder, "file", entry.Filename)
	}
	if err := c.store.Save(idx); err != nil {
		return nil, err
	}

	result.Pruned = true
	result.Message = fmt.Sprintf("Pruned %d of %d entries", len(result.Missing), result.Checked)
	return result, nil
}
