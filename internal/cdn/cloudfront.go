// Package cdn invalidates CDN caches after a web release by shelling out to
// the aws CLI. A non-zero exit is fatal for the invocation.
package cdn

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

// ResolveDistribution picks the CloudFront distribution ID for an app.
func ResolveDistribution(cfg *config.Configuration, app string) (string, error) {
	if len(cfg.CloudFront.Distributions) == 0 {
		return "", relerr.New(relerr.WebhookConfig, "no CloudFront distributions configured")
	}
	id, ok := cfg.CloudFront.Distributions[app]
	if !ok || id == "" {
		return "", relerr.Newf(relerr.WebhookNotFound, "no CloudFront distribution configured for app %q", app)
	}
	return id, nil
}

// Invalidate creates a full-path invalidation for the app's distribution.
func Invalidate(cfg *config.Configuration, app string) error {
	id, err := ResolveDistribution(cfg, app)
	if err != nil {
		return err
	}
	return runInvalidation(id)
}

// runInvalidation invokes the aws CLI for the given distribution.
func runInvalidation(distributionID string) error {
	cmd := exec.Command("aws", "cloudfront", "create-invalidation",
		"--distribution-id", distributionID,
		"--paths", "/*")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return relerr.Newf(relerr.ExternalCommand,
			"aws cloudfront create-invalidation failed for %s: %s", distributionID, detail)
	}
	return nil
}
