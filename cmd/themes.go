package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-skeleton-app/internal/list"
)

var themesOutputFormat string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the Skeleton themes and their bundled fonts",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return list.Themes(&list.Opts{OutputFormat: themesOutputFormat, Writer: os.Stdout})
	},
}

func init() {
	themesCmd.Flags().StringVarP(&themesOutputFormat, "output", "o", list.FormatTable, "output format (table, json)")
	rootCmd.AddCommand(themesCmd)
}
