package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgcurate/internal/adapters/jsonfile"
	"imgcurate/internal/application/commands"
	"imgcurate/internal/domain"
)

var indexDryRun bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan the library and save the image index",
	Long: `Scan every folder directly under the library root for image files and
save the result as the index, replacing any existing one.

Hidden folders and files in the root itself are ignored. Folders that
cannot be read are reported and skipped.

Examples:
  imgcurate-cli index --root ~/Pictures
  imgcurate-cli index --store sqlite
  imgcurate-cli index --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		build := commands.NewBuildIndexCommand(lib, logger)
		build.OnFolder = func(scan domain.FolderScan) {
			switch {
			case scan.Skipped():
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipping '%s': %v\n", scan.Folder, scan.Err)
			case scan.Images > 0:
				fmt.Fprintf(out, "Found %d images in '%s'\n", scan.Images, scan.Folder)
			}
		}

		result, err := build.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nTotal folders: %d\n", result.Summary.Folders)
		fmt.Fprintf(out, "Total images: %d\n", result.Summary.Images)

		if indexDryRun {
			data, err := jsonfile.Encode(result.Index)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s", data)
			return nil
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Save(result.Index); err != nil {
			return err
		}
		fmt.Fprintf(out, "Index saved to: %s\n", store.Location())
		return nil
	},
}

func init() {
	indexCmd.Flags().BoolVarP(&indexDryRun, "dry-run", "n", false, "print the index instead of saving it")
	rootCmd.AddCommand(indexCmd)
}
