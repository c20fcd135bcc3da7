package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "imgcurate/internal/adapters/mcp"
	"imgcurate/internal/application/review"
	"imgcurate/internal/config"
	"imgcurate/internal/logging"
)

func main() {
	var flags config.Overrides
	flag.StringVar(&flags.Root, "root", "", "library root folder (default: current directory)")
	flag.StringVar(&flags.IndexFile, "index", "", "JSON index file (default: <root>/images.json)")
	flag.StringVar(&flags.Store, "store", "", "index store: json or sqlite")
	flag.StringVar(&flags.DBPath, "db", "", "SQLite database file")
	autoReconcile := flag.Bool("auto-reconcile", false, "drop index entries whose file is missing")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "auto-reconcile" {
			flags.AutoReconcile = autoReconcile
		}
	})

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("imgcurate-mcp: %v", err)
	}

	// Stdout carries the protocol
	logger := logging.New(cfg.LogLevel, os.Stderr)

	lib := cfg.Library()
	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatalf("imgcurate-mcp: %v", err)
	}
	defer store.Close()

	rev := mcpadapter.NewReviewer(lib, store,
		review.WithAutoReconcile(cfg.AutoReconcile),
		review.WithLogger(logger),
	)

	mcpServer := server.NewMCPServer(
		"imgcurate-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterIndexTools(mcpServer, lib, store, rev, logger)
	mcpadapter.RegisterReviewTools(mcpServer, rev)

	logger.Info("Serving MCP on stdio", "root", cfg.Root, "index", store.Location())
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("imgcurate-mcp: %v", err)
	}
}
