package cli

import (
	"strings"

	"github.com/spf13/cobra"

	relerr "github.com/relkit/relkit/internal/errors"
	"github.com/relkit/relkit/internal/notify"
	"github.com/relkit/relkit/internal/output"
	"github.com/relkit/relkit/internal/release"
)

var (
	notifySlackAppFlag     string
	notifySlackMessageFlag string
	notifyJiraVersionFlag  string
	notifyJiraIssuesFlag   []string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send release notifications to external systems",
	Long:  `Commands for delivering release events to chat and issue-tracker webhooks.`,
}

var notifySlackCmd = &cobra.Command{
	Use:   "slack",
	Short: "Post a message to an app's Slack webhook",
	Long: `Post a plain-text message to the Slack incoming webhook configured for
an app.

Examples:
  relkit notify slack --app driver --message "Released 1.4.2"`,
	Args:         usageArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotifySlack(cmd)
	},
}

var notifyJiraCmd = &cobra.Command{
	Use:   "jira",
	Short: "Post a version's production changelog to the issue tracker",
	Long: `Extract the cleaned production changelog for a version and deliver it,
together with the released issue keys, to the configured issue-tracker
webhook.

Examples:
  relkit notify jira --version 1.4.2 --issues APP-104,APP-117`,
	Args:         usageArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotifyJira(cmd)
	},
}

func init() {
	notifyCmd.GroupID = GroupExternal
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifySlackCmd)
	notifyCmd.AddCommand(notifyJiraCmd)

	notifySlackCmd.Flags().StringVar(&notifySlackAppFlag, "app", "", "App whose webhook receives the message (required)")
	notifySlackCmd.Flags().StringVar(&notifySlackMessageFlag, "message", "", "Message text (required)")

	notifyJiraCmd.Flags().StringVar(&notifyJiraVersionFlag, "version", "", "Released version (required)")
	notifyJiraCmd.Flags().StringSliceVar(&notifyJiraIssuesFlag, "issues", nil, "Released issue keys")
}

func runNotifySlack(cmd *cobra.Command) error {
	if notifySlackAppFlag == "" || notifySlackMessageFlag == "" {
		return relerr.New(relerr.InvalidArguments, "--app and --message are required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := notify.New(nil).Slack(cfg, notifySlackAppFlag, notifySlackMessageFlag); err != nil {
		return err
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Notified Slack ("+notifySlackAppFlag+")")
	return nil
}

func runNotifyJira(cmd *cobra.Command) error {
	if notifyJiraVersionFlag == "" {
		return relerr.New(relerr.InvalidArguments, "--version is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	section, err := release.ProductionChangelog(cfg, notifyJiraVersionFlag)
	if err != nil {
		return err
	}

	body := strings.Join(section.Lines, "\n")
	if err := notify.New(nil).Jira(cfg, notifyJiraIssuesFlag, body, notifyJiraVersionFlag); err != nil {
		return err
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Notified issue tracker for "+notifyJiraVersionFlag)
	return nil
}
