package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgcurate/internal/application/commands"
)

var checkPrune bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Find index entries whose file is missing",
	Long: `Compare the index with the library and list entries whose file no
longer exists. With --prune, remove them from the index and save it.

Examples:
  imgcurate-cli check
  imgcurate-cli check --prune`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := commands.NewCheckCommand(lib, store, checkPrune, logger).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range result.Missing {
			fmt.Fprintf(out, "missing: %s\n", e)
		}
		fmt.Fprintln(out, result.Message)
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkPrune, "prune", false, "remove missing entries from the index")
	rootCmd.AddCommand(checkCmd)
}
