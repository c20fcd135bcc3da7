package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgcurate/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index totals and the library size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := commands.NewStatsCommand(lib, store).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Root:        %s\n", lib.Root())
		fmt.Fprintf(out, "Index:       %s\n", store.Location())
		fmt.Fprintf(out, "Folders:     %d\n", stats.Folders)
		fmt.Fprintf(out, "Images:      %d\n", stats.Images)
		fmt.Fprintf(out, "Folder size: %.2f MB\n", stats.SizeMB())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
