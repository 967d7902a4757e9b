package notify

import (
	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

// jiraPayload carries the released issues and the changelog for the release
// version to the issue-tracker webhook.
type jiraPayload struct {
	Issues []string `json:"issues"`
	Data   jiraData `json:"data"`
}

type jiraData struct {
	Changelog      string `json:"changelog"`
	ReleaseVersion string `json:"releaseVersion"`
}

// Jira posts the release changelog and issue keys to the configured
// issue-tracker webhook, authenticating with the bearer-style token header.
func (n *Notifier) Jira(cfg *config.Configuration, issues []string, changelog, version string) error {
	if cfg.Jira.URL == "" {
		return relerr.New(relerr.WebhookConfig, "no Jira webhook configured")
	}

	payload := jiraPayload{
		Issues: issues,
		Data: jiraData{
			Changelog:      changelog,
			ReleaseVersion: version,
		},
	}

	headers := map[string]string{}
	if cfg.Jira.Token != "" {
		headers["X-Automation-Webhook-Token"] = cfg.Jira.Token
	}
	return n.post(cfg.Jira.URL, payload, headers)
}
