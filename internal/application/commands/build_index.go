package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"imgcurate/internal/application"
	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

// BuildIndexResult contains the result of an index build
type BuildIndexResult struct {
	Index   *domain.ImageIndex
	Scans   []domain.FolderScan
	Summary domain.ScanSummary
}

// BuildIndexCommand scans the folders directly under a library root and
// collects their image files. It does not persist anything.
type BuildIndexCommand struct {
	lib    ports.Library
	logger *slog.Logger

	// OnFolder, when set, receives each folder's scan outcome as it completes
	OnFolder func(domain.FolderScan)
}

// NewBuildIndexCommand creates a new BuildIndexCommand
func NewBuildIndexCommand(lib ports.Library, logger *slog.Logger) *BuildIndexCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildIndexCommand{
		lib:    lib,
		logger: logger,
	}
}

// Validate checks if the build operation is valid
func (c *BuildIndexCommand) Validate() error {
	if c.lib == nil {
		return &application.ValidationError{Field: "rootPath", Message: "library is required"}
	}
	return application.ValidateRequired("rootPath", c.lib.Root())
}

// Execute runs the scan. Only failing to list the root itself is an error;
// folders that cannot be listed are reported and skipped.
func (c *BuildIndexCommand) Execute(ctx context.Context) (*BuildIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	folders, err := c.lib.ListFolders()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", application.ErrRootUnreadable, err)
	}
	sort.Strings(folders)

	result := &BuildIndexResult{Index: domain.NewImageIndex()}

	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		files, err := c.lib.ListFiles(folder)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				err = fmt.Errorf("%w: %w", application.ErrPermissionDenied, err)
			}
			c.logger.Warn("Skipping folder", "folder", folder, "error", err)
			result.Summary.Skipped++
			c.report(result, domain.FolderScan{Folder: folder, Err: err})
			continue
		}

		images := make([]string, 0, len(files))
		for _, name := range files {
			if domain.IsImageFile(name) {
				images = append(images, name)
			}
		}
		sort.Strings(images)

		if len(images) == 0 {
			c.logger.Debug("No images in folder", "folder", folder)
		} else {
			result.Index.Set(folder, images)
			result.Summary.Folders++
			result.Summary.Images += len(images)
			c.logger.Debug("Scanned folder", "folder", folder, "images", len(images))
		}
		c.report(result, domain.FolderScan{Folder: folder, Images: len(images)})
	}

	result.Summary.Duration = time.Since(start)
	c.logger.Info("Index built",
		"folders", result.Summary.Folders,
		"images", result.Summary.Images,
		"skipped", result.Summary.Skipped,
		"duration", result.Summary.Duration)

	return result, nil
}

func (c *BuildIndexCommand) report(result *BuildIndexResult, scan domain.FolderScan) {
	result.Scans = append(result.Scans, scan)
	if c.OnFolder != nil {
		c.OnFolder(scan)
	}
}
