package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgcurate/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [folder]",
	Short: "List indexed folders or the images in one folder",
	Long: `Without arguments, list the folders in the index with their image
counts in review order. With a folder name, list its image files.

Examples:
  imgcurate-cli list
  imgcurate-cli list holidays`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			files, err := commands.NewListImagesCommand(store, args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(out, f)
			}
			return nil
		}

		folders, err := commands.NewListFoldersCommand(store).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, f := range folders {
			fmt.Fprintf(out, "%5d  %s\n", f.Images, f.Folder)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
