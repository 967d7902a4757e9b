// Package notify delivers release notifications to external systems over a
// single HTTP POST per target: a chat webhook (Slack) and an issue-tracker
// webhook (Jira). Webhook targets come from the explicit configuration
// struct; an unresolvable target is a classified failure, not a silent skip.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	relerr "github.com/relkit/relkit/internal/errors"
)

// Notifier posts JSON payloads to configured webhooks.
type Notifier struct {
	client *http.Client
}

// New creates a Notifier. A nil client uses http.DefaultClient.
func New(client *http.Client) *Notifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &Notifier{client: client}
}

// post delivers a JSON body to url with the given extra headers and checks
// for a 2xx response.
func (n *Notifier) post(url string, payload any, headers map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return relerr.Newf(relerr.ExternalCommand,
			"webhook %s returned %d: %s", url, resp.StatusCode, string(detail))
	}
	return nil
}
