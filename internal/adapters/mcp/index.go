package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"imgcurate/internal/application/commands"
	"imgcurate/internal/ports"
)

// RegisterIndexTools adds the index building and inspection tools to the MCP server.
// Rebuilding the index resets rev so the next review starts from the new index.
func RegisterIndexTools(s *server.MCPServer, lib ports.Library, store ports.IndexStore, rev *Reviewer, logger *slog.Logger) {
	s.AddTool(buildIndexTool(), buildIndexHandler(lib, store, rev, logger))
	s.AddTool(listFoldersTool(), listFoldersHandler(store))
	s.AddTool(listImagesTool(), listImagesHandler(store))
	s.AddTool(statsTool(), statsHandler(lib, store))
	s.AddTool(checkTool(), checkHandler(lib, store, rev, logger))
}

// --- build_index ---

func buildIndexTool() mcp.Tool {
	return mcp.NewTool("build_index",
		mcp.WithDescription("Scan the library root for image files, one level of subfolders deep, and save the index. Replaces any existing index and restarts the review."),
	)
}

func buildIndexHandler(lib ports.Library, store ports.IndexStore, rev *Reviewer, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rev.mu.Lock()
		defer rev.mu.Unlock()

		result, err := commands.NewBuildIndexCommand(lib, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if err := store.Save(result.Index); err != nil {
			return toolError(err)
		}
		rev.reset()

		var sb strings.Builder
		for _, scan := range result.Scans {
			switch {
			case scan.Skipped():
				fmt.Fprintf(&sb, "Skipped '%s': %v\n", scan.Folder, scan.Err)
			case scan.Images > 0:
				fmt.Fprintf(&sb, "Found %d images in '%s'\n", scan.Images, scan.Folder)
			}
		}
		fmt.Fprintf(&sb, "Total folders: %d\nTotal images: %d\nSaved to %s",
			result.Summary.Folders, result.Summary.Images, store.Location())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_folders ---

func listFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List the folders in the saved index with their image counts, in review order."),
	)
}

func listFoldersHandler(store ports.IndexStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folders, err := commands.NewListFoldersCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLines(folders, func(f commands.FolderSummary) string {
			return fmt.Sprintf("%s  %d", f.Folder, f.Images)
		})
	}
}

// --- list_images ---

func listImagesTool() mcp.Tool {
	return mcp.NewTool("list_images",
		mcp.WithDescription("List the image filenames indexed for one folder."),
		mcp.WithString("folder",
			mcp.Description("Folder name as shown by list_folders"),
			mcp.Required(),
		),
	)
}

func listImagesHandler(store ports.IndexStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder := req.GetString("folder", "")

		files, err := commands.NewListImagesCommand(store, folder).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLines(files, func(f string) string { return f })
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Show index totals and the size of the library on disk."),
	)
}

func statsHandler(lib ports.Library, store ports.IndexStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewStatsCommand(lib, store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Folders: %d\nImages: %d\nFolder size: %.2f MB",
			stats.Folders, stats.Images, stats.SizeMB())), nil
	}
}

// --- check ---

func checkTool() mcp.Tool {
	return mcp.NewTool("check",
		mcp.WithDescription("Find index entries whose file no longer exists. With prune, remove them from the index and restart the review."),
		mcp.WithBoolean("prune",
			mcp.Description("Remove missing entries from the saved index"),
		),
	)
}

func checkHandler(lib ports.Library, store ports.IndexStore, rev *Reviewer, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prune := req.GetBool("prune", false)

		rev.mu.Lock()
		defer rev.mu.Unlock()

		result, err := commands.NewCheckCommand(lib, store, prune, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Pruned {
			rev.reset()
		}

		var sb strings.Builder
		for _, e := range result.Missing {
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatLines[T any](items []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(format(item))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
