package commands

import (
	"context"
	"fmt"

	"imgcurate/internal/ports"
)

// FolderSummary is one folder of the index with its image count
type FolderSummary struct {
	Folder string
	Images int
}

// ListFoldersCommand lists the folders recorded in the stored index
type ListFoldersCommand struct {
	store ports.IndexStore
}

// NewListFoldersCommand creates a new ListFoldersCommand
func NewListFoldersCommand(store ports.IndexStore) *ListFoldersCommand {
	return &ListFoldersCommand{store: store}
}

// Execute runs the list folders command
func (c *ListFoldersCommand) Execute(ctx context.Context) ([]FolderSummary, error) {
	idx, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	folders := idx.Folders()
	out := make([]FolderSummary, 0, len(folders))
	for _, folder := range folders {
		out = append(out, FolderSummary{Folder: folder, Images: len(idx.Files(folder))})
	}
	return out, nil
}

// ListImagesCommand lists the images of one folder in the stored index
type ListImagesCommand struct {
	store  ports.IndexStore
	Folder string
}

// NewListImagesCommand creates a new ListImagesCommand
func NewListImagesCommand(store ports.IndexStore, folder string) *ListImagesCommand {
	return &ListImagesCommand{
		store:  store,
		Folder: folder,
	}
}

// Execute runs the list images command
func (c *ListImagesCommand) Execute(ctx context.Context) ([]string, error) {
	idx, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	files := idx.Files(c.Folder)
	if len(files) == 0 {
		return nil, fmt.Errorf("folder %q is not in the index", c.Folder)
	}
	return files, nil
}
