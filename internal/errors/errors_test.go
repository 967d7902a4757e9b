package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(VersionNotFound, "No changelog found for version %s", "1.2.3")
	assert.Equal(t, "No changelog found for version 1.2.3", err.Error())
	assert.Equal(t, VersionNotFound, err.Kind)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	wrapped := Wrap(fmt.Errorf("read failed"), MalformedManifest)
	require.NotNil(t, wrapped)
	assert.Equal(t, MalformedManifest, wrapped.Kind)
	assert.Equal(t, "read failed", wrapped.Message)

	assert.Nil(t, Wrap(nil, MalformedManifest))
}

func TestWrapWithMessage(t *testing.T) {
	t.Parallel()

	wrapped := WrapWithMessage(fmt.Errorf("exit status 128"), ExternalCommand, "pushing tag")
	require.NotNil(t, wrapped)
	assert.Equal(t, "pushing tag: exit status 128", wrapped.Message)
}

func TestAsAndIsKind(t *testing.T) {
	t.Parallel()

	classified := New(NoNewChanges, "nothing to promote")
	assert.NotNil(t, As(classified))
	assert.True(t, IsKind(classified, NoNewChanges))
	assert.False(t, IsKind(classified, MissingChangelog))

	plain := errors.New("boom")
	assert.Nil(t, As(plain))
	assert.False(t, IsKind(plain, NoNewChanges))
	assert.False(t, IsKind(nil, NoNewChanges))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind Kind
		want string
	}{
		"malformed manifest":   {kind: MalformedManifest, want: "Malformed Manifest"},
		"invalid version":      {kind: InvalidVersion, want: "Invalid Version"},
		"invalid build number": {kind: InvalidBuildNumber, want: "Invalid Build Number"},
		"invalid arguments":    {kind: InvalidArguments, want: "Invalid Arguments"},
		"missing changelog":    {kind: MissingChangelog, want: "Missing Changelog"},
		"no new changes":       {kind: NoNewChanges, want: "No New Changes"},
		"version not found":    {kind: VersionNotFound, want: "Version Not Found"},
		"external command":     {kind: ExternalCommand, want: "External Command Failed"},
		"webhook config":       {kind: WebhookConfig, want: "Webhook Not Configured"},
		"webhook not found":    {kind: WebhookNotFound, want: "Webhook Not Found"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
