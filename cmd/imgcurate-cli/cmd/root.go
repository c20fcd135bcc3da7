package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"imgcurate/internal/adapters/filesystem"
	"imgcurate/internal/config"
	"imgcurate/internal/logging"
	"imgcurate/internal/ports"
)

var (
	flags      config.Overrides
	logLevel   string
	appVersion = "dev"

	cfg    config.Config
	lib    *filesystem.Library
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "imgcurate-cli",
	Short: "Index and maintain image collections",
	Long: `imgcurate-cli builds and maintains the image index used by the
imgcurate reviewer.

The index maps each folder directly under the library root to the image
files it contains. Settings come from .imgcurate.yaml in the root, a .env
file, IMGCURATE_* environment variables and the flags below.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		loaded, err := config.Load(flags)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}

		cfg = loaded
		lib = cfg.Library()
		logger = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		logger.Debug("Configuration loaded", "root", cfg.Root, "store", cfg.Store, "file", cfg.File)
		return nil
	},
}

// Execute runs the root command through fang
func Execute(ctx context.Context, version string) error {
	appVersion = version
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.Root, "root", "r", "", "library root folder (default: current directory)")
	pf.StringVarP(&flags.IndexFile, "index", "i", "", "JSON index file (default: <root>/images.json)")
	pf.StringVar(&flags.Store, "store", "", "index store: json or sqlite")
	pf.StringVar(&flags.DBPath, "db", "", "SQLite database file (default: XDG data dir)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// openStore opens the configured index store
func openStore() (ports.IndexStore, error) {
	return cfg.OpenStore()
}
