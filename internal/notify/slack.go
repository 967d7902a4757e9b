package notify

import (
	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

// slackPayload is the incoming-webhook message body.
type slackPayload struct {
	Text string `json:"text"`
}

// ResolveSlackWebhook picks the webhook URL for an app from configuration.
// No webhooks configured at all is a WebhookConfig failure; a missing entry
// for the app is a WebhookNotFound failure.
func ResolveSlackWebhook(cfg *config.Configuration, app string) (string, error) {
	if len(cfg.Slack.Webhooks) == 0 {
		return "", relerr.New(relerr.WebhookConfig, "no Slack webhooks configured")
	}
	url, ok := cfg.Slack.Webhooks[app]
	if !ok || url == "" {
		return "", relerr.Newf(relerr.WebhookNotFound, "no Slack webhook configured for app %q", app)
	}
	return url, nil
}

// Slack posts a plain-text message to the app's configured Slack webhook.
func (n *Notifier) Slack(cfg *config.Configuration, app, message string) error {
	url, err := ResolveSlackWebhook(cfg, app)
	if err != nil {
		return err
	}
	return n.post(url, slackPayload{Text: message}, nil)
}
