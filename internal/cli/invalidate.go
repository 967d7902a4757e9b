package cli

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/relkit/relkit/internal/cdn"
	relerr "github.com/relkit/relkit/internal/errors"
	"github.com/relkit/relkit/internal/output"
)

var invalidateAppFlag string

var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "Invalidate the CDN cache for an app's web distribution",
	Long: `Create a full-path CloudFront invalidation for the app's configured
distribution, so a freshly released web build is served immediately.

Examples:
  relkit invalidate --app portal`,
	Args:         usageArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvalidate(cmd)
	},
}

func init() {
	invalidateCmd.GroupID = GroupExternal
	rootCmd.AddCommand(invalidateCmd)

	invalidateCmd.Flags().StringVar(&invalidateAppFlag, "app", "", "App whose distribution is invalidated (required)")
}

func runInvalidate(cmd *cobra.Command) error {
	if invalidateAppFlag == "" {
		return relerr.New(relerr.InvalidArguments, "--app is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var spin *spinner.Spinner
	if output.IsTerminal() {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " Invalidating CDN cache for " + invalidateAppFlag + "..."
		spin.Start()
	}

	err = cdn.Invalidate(cfg, invalidateAppFlag)

	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Invalidation created for "+invalidateAppFlag)
	return nil
}
