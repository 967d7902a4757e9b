package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/relkit/relkit/internal/git"
	"github.com/relkit/relkit/internal/notify"
	"github.com/relkit/relkit/internal/output"
	"github.com/relkit/relkit/internal/release"
)

var (
	releaseBranchFlag     string
	releaseSetVersionFlag string
	releaseSetBnFlag      string
	releaseTagPrefixFlag  string
	releaseCIFlag         bool
	releaseNotifyAppFlag  string
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Bump the version, update the changelog, tag and push",
	Long: `Run the release pipeline: compute the next version and build number,
derive a changelog section from the commits since the last changelog edit,
write the manifest and changelog, then commit, tag and push.

Without --set-version the patch component is incremented. Without --set-bn
the build number is carried over and incremented; a manifest version without
a build number stays without one.

Examples:
  relkit release                          # patch bump on the current branch
  relkit release --branch main            # check out main first
  relkit release --set-version 2.0.0      # explicit version
  relkit release --set-bn 120             # explicit build number
  relkit release --tag-prefix v --ci      # unsigned v-prefixed tag`,
	Args:         usageArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd)
	},
}

func init() {
	releaseCmd.GroupID = GroupRelease
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVar(&releaseBranchFlag, "branch", "", "Branch to release from")
	releaseCmd.Flags().StringVar(&releaseSetVersionFlag, "set-version", "", "Explicit release version (MAJOR.MINOR.PATCH)")
	releaseCmd.Flags().StringVar(&releaseSetBnFlag, "set-bn", "", "Explicit build number")
	releaseCmd.Flags().StringVar(&releaseTagPrefixFlag, "tag-prefix", "", "Tag name prefix")
	releaseCmd.Flags().BoolVar(&releaseCIFlag, "ci", false, "CI mode: do not sign the release tag")
	releaseCmd.Flags().StringVar(&releaseNotifyAppFlag, "notify", "", "Post the new section to the app's Slack webhook")
}

func runRelease(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo, err := git.Open("")
	if err != nil {
		return err
	}

	opts := release.Options{
		Branch:          releaseBranchFlag,
		ExplicitVersion: releaseSetVersionFlag,
		ExplicitBuild:   releaseSetBnFlag,
		TagPrefix:       releaseTagPrefixFlag,
		CI:              releaseCIFlag,
	}

	result, err := release.Run(cfg, repo, opts, time.Now(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Released "+result.Version.String()+" (tag "+result.Tag+")")

	if releaseNotifyAppFlag != "" {
		message := "Released " + result.Version.String() + "\n" + strings.Join(result.Section, "\n")
		if err := notify.New(nil).Slack(cfg, releaseNotifyAppFlag, message); err != nil {
			return err
		}
		output.PrintSuccess(cmd.OutOrStdout(), "Notified Slack ("+releaseNotifyAppFlag+")")
	}

	return nil
}
