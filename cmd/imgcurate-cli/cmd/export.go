package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgcurate/internal/application"
	"imgcurate/internal/application/commands"
)

var exportTarget string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy the index to another store",
	Long: `Copy the index from the configured store to the other store kind,
for example from images.json into the SQLite database.

Examples:
  imgcurate-cli export --to sqlite
  imgcurate-cli --store sqlite export --to json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.ValidateStoreKind("target", exportTarget); err != nil {
			return err
		}

		src, err := openStore()
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := cfg.OpenStoreKind(exportTarget)
		if err != nil {
			return err
		}
		defer dst.Close()

		result, err := commands.NewExportCommand(src, dst).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d images in %d folders from %s to %s\n",
			result.Images, result.Folders, src.Location(), dst.Location())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportTarget, "to", "sqlite", "destination store: json or sqlite")
	rootCmd.AddCommand(exportCmd)
}
