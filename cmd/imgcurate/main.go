package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"imgcurate/internal/adapters/preview"
	"imgcurate/internal/adapters/tui"
	"imgcurate/internal/adapters/viewer"
	"imgcurate/internal/application"
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
	flag.StringVar(&flags.Viewer, "viewer", "", "external image viewer command")
	autoReconcile := flag.Bool("auto-reconcile", false, "drop index entries whose file is missing")
	confirmDelete := flag.Bool("confirm-delete", false, "ask before deleting a file")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "auto-reconcile":
			flags.AutoReconcile = autoReconcile
		case "confirm-delete":
			flags.ConfirmDelete = confirmDelete
		}
	})

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags config.Overrides) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	lib := cfg.Library()
	if _, err := lib.ListFolders(); err != nil {
		return fmt.Errorf("%w: %w", application.ErrRootUnreadable, err)
	}

	store, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session, state, err := review.Open(lib, store,
		review.WithAutoReconcile(cfg.AutoReconcile),
		review.WithLogger(logger),
	)
	if session == nil {
		return err
	}
	if err != nil {
		logger.Warn("Reconciliation at startup failed", "error", err)
	}

	app := tui.NewApp(session, state, lib, preview.NewRenderer(), viewer.NewOpener(cfg.Viewer), tui.Options{
		ConfirmDelete: cfg.ConfirmDelete,
		Logger:        logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	c := session.Counters()
	fmt.Printf("Deleted: %d  Skipped: %d  Missing: %d\n", c.Deleted, c.Skipped, c.Missing)
	return nil
}

// newLogger writes to imgcurate.log while debugging, since the terminal
// belongs to the TUI, and discards records otherwise
func newLogger(level string) (*slog.Logger, func(), error) {
	if level == "" {
		level = logging.LevelFromEnv()
	}
	if logging.ParseLevel(level) != slog.LevelDebug {
		return logging.Discard(), func() {}, nil
	}

	f, err := tea.LogToFile("imgcurate.log", "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(level, f), func() { f.Close() }, nil
}
