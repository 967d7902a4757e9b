package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

func TestResolveSlackWebhook(t *testing.T) {
	tests := map[string]struct {
		webhooks map[string]string
		app      string
		wantURL  string
		wantKind relerr.Kind
		wantErr  bool
	}{
		"configured app": {
			webhooks: map[string]string{"driver": "https://hooks.example.com/driver"},
			app:      "driver",
			wantURL:  "https://hooks.example.com/driver",
		},
		"nothing configured at all": {
			webhooks: nil,
			app:      "driver",
			wantErr:  true,
			wantKind: relerr.WebhookConfig,
		},
		"app missing from map": {
			webhooks: map[string]string{"rider": "https://hooks.example.com/rider"},
			app:      "driver",
			wantErr:  true,
			wantKind: relerr.WebhookNotFound,
		},
		"app mapped to empty URL": {
			webhooks: map[string]string{"driver": ""},
			app:      "driver",
			wantErr:  true,
			wantKind: relerr.WebhookNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Configuration{Slack: config.SlackConfig{Webhooks: tt.webhooks}}
			url, err := ResolveSlackWebhook(cfg, tt.app)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, relerr.IsKind(err, tt.wantKind), "kind mismatch: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestSlack(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	cfg := &config.Configuration{Slack: config.SlackConfig{
		Webhooks: map[string]string{"driver": srv.URL},
	}}

	err := New(srv.Client()).Slack(cfg, "driver", "Released 1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "Released 1.2.3", payload["text"])
}

func TestSlack_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := &config.Configuration{Slack: config.SlackConfig{
		Webhooks: map[string]string{"driver": srv.URL},
	}}

	err := New(srv.Client()).Slack(cfg, "driver", "hello")
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.ExternalCommand))
}

func TestJira(t *testing.T) {
	var gotToken string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Automation-Webhook-Token")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	cfg := &config.Configuration{Jira: config.JiraConfig{URL: srv.URL, Token: "secret"}}

	err := New(srv.Client()).Jira(cfg, []string{"APP-104", "APP-117"}, "- Add login", "1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "secret", gotToken)

	var payload struct {
		Issues []string `json:"issues"`
		Data   struct {
			Changelog      string `json:"changelog"`
			ReleaseVersion string `json:"releaseVersion"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, []string{"APP-104", "APP-117"}, payload.Issues)
	assert.Equal(t, "- Add login", payload.Data.Changelog)
	assert.Equal(t, "1.2.3", payload.Data.ReleaseVersion)
}

func TestJira_NoURLConfigured(t *testing.T) {
	cfg := &config.Configuration{}

	err := New(nil).Jira(cfg, nil, "", "1.2.3")
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.WebhookConfig))
}
