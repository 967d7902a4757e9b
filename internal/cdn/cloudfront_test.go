package cdn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

func TestResolveDistribution(t *testing.T) {
	tests := map[string]struct {
		distributions map[string]string
		app           string
		wantID        string
		wantKind      relerr.Kind
		wantErr       bool
	}{
		"configured app": {
			distributions: map[string]string{"web": "E2ABCDEF"},
			app:           "web",
			wantID:        "E2ABCDEF",
		},
		"nothing configured": {
			distributions: nil,
			app:           "web",
			wantErr:       true,
			wantKind:      relerr.WebhookConfig,
		},
		"app missing": {
			distributions: map[string]string{"admin": "E9XYZ"},
			app:           "web",
			wantErr:       true,
			wantKind:      relerr.WebhookNotFound,
		},
		"empty distribution id": {
			distributions: map[string]string{"web": ""},
			app:           "web",
			wantErr:       true,
			wantKind:      relerr.WebhookNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Configuration{CloudFront: config.CloudFrontConfig{Distributions: tt.distributions}}
			id, err := ResolveDistribution(cfg, tt.app)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, relerr.IsKind(err, tt.wantKind), "kind mismatch: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
