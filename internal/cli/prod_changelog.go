package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	relerr "github.com/relkit/relkit/internal/errors"
	"github.com/relkit/relkit/internal/release"
)

var prodChangelogVersionFlag string

var prodChangelogCmd = &cobra.Command{
	Use:   "prod_changelog",
	Short: "Promote a version's changelog section to the production changelog",
	Long: `Extract the changelog section for a version, clean it for external
display (development-only entries and bracketed markers removed), and prepend
it to the production changelog document.

Running the command again for the same version without new changes fails,
so CI pipelines do not publish duplicate release notes.

Examples:
  relkit prod_changelog --version 1.4.2`,
	Args:         usageArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProdChangelog(cmd)
	},
}

func init() {
	prodChangelogCmd.GroupID = GroupQuery
	rootCmd.AddCommand(prodChangelogCmd)

	prodChangelogCmd.Flags().StringVar(&prodChangelogVersionFlag, "version", "", "Version to promote (required)")
}

func runProdChangelog(cmd *cobra.Command) error {
	if prodChangelogVersionFlag == "" {
		return relerr.New(relerr.InvalidArguments, "--version is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	section, err := release.ProductionChangelog(cfg, prodChangelogVersionFlag)
	if err != nil {
		return err
	}

	for _, line := range section.Lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
