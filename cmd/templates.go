package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-skeleton-app/internal/list"
	"github.com/donaldgifford/create-skeleton-app/internal/ui"
)

var (
	templatesOutputFormat string
	templatesAll          bool
	templatesDir          string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the templates a project can start from",
	Long: `List the templates of a template catalog in the order they are offered.
By default the builtin catalog is listed; use --skeletontemplatedir to list
a directory or a remote catalog.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runTemplates,
}

func init() {
	templatesCmd.Flags().StringVarP(&templatesOutputFormat, "output", "o", list.FormatTable, "output format (table, json)")
	templatesCmd.Flags().BoolVar(&templatesAll, "all", false, "include disabled templates")
	templatesCmd.Flags().StringVar(&templatesDir, flagTemplateDir, "", "template catalog: a directory or a go-getter source")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(ui.NewWriter(noColor))
	if err != nil {
		return err
	}

	cat, err := openCatalog(cmd.Context(), cfg, templatesDir)
	if err != nil {
		return err
	}

	return list.Templates(cat, &list.Opts{
		OutputFormat: templatesOutputFormat,
		All:          templatesAll,
		Writer:       os.Stdout,
	})
}
