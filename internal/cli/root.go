// Package cli wires the relkit commands: the release pipeline, changelog
// queries, and the external-system notification commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relkit/relkit/internal/buildinfo"
	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
	"github.com/relkit/relkit/internal/git"
)

// Command group IDs for help output.
const (
	GroupRelease  = "release"
	GroupQuery    = "query"
	GroupExternal = "external"
)

var (
	configFlag  string
	verboseFlag bool
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "relkit",
	Short: "Release automation for app projects",
	Long: `relkit automates app releases: it bumps the manifest version and build
number, derives a changelog section from tagged commit messages, creates and
pushes the release tag, and notifies external systems of the release.`,
	Example: `  relkit release
  relkit release --set-version 2.1.0 --branch main
  relkit changelog 1.4.2
  relkit prod_changelog --version 1.4.2`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(func(format string, args ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
			})
		}
	},
	Version: buildinfo.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to project config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Debug output for git operations")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupQuery, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupExternal, Title: "External Systems:"},
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return relerr.Wrap(err, relerr.InvalidArguments)
	})
}

// usageArgs wraps a positional-args validator so its failures map to the
// usage exit code instead of the generic software error.
func usageArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validator(cmd, args); err != nil {
			return relerr.Wrap(err, relerr.InvalidArguments)
		}
		return nil
	}
}

// Execute runs the root command and returns the command error, if any.
// The exit-code mapping happens in main via ExitCode.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the configuration honoring the --config override.
func loadConfig() (*config.Configuration, error) {
	return config.Load(configFlag)
}
