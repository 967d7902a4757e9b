package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relkit/relkit/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print relkit build information",
	Args:  usageArgs(cobra.NoArgs),
	Run: func(cmd *cobra.Command, args []string) {
		if buildinfo.IsDevBuild() {
			fmt.Fprintln(cmd.OutOrStdout(), "relkit dev (unreleased build)")
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "relkit %s (commit %s, built %s)\n",
			buildinfo.Version, buildinfo.Commit, buildinfo.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
