package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relkit/relkit/internal/changelog"
	relerr "github.com/relkit/relkit/internal/errors"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog <version>",
	Short: "Print the changelog section for a version",
	Long: `Print the changelog entries recorded for a specific version, as they
appear in the changelog document (markers included, headers excluded).

Examples:
  relkit changelog 1.4.2`,
	Args:         usageArgs(cobra.ExactArgs(1)),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelog(cmd, args[0])
	},
}

func init() {
	changelogCmd.GroupID = GroupQuery
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, version string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := changelog.Load(cfg.Changelog)
	if err != nil {
		return err
	}

	lines, found := doc.Extract(version)
	if !found {
		return relerr.Newf(relerr.VersionNotFound, "No changelog found for version %s", version)
	}

	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
