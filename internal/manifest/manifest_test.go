package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relerr "github.com/relkit/relkit/internal/errors"
	"github.com/relkit/relkit/internal/version"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pubspec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	tests := map[string]struct {
		content  string
		want     string
		wantErr  bool
		wantKind relerr.Kind
	}{
		"plain version line": {
			content: "name: driver\nversion: 1.2.3\n",
			want:    "1.2.3",
		},
		"version with build number": {
			content: "name: driver\nversion: 1.2.3+45\n",
			want:    "1.2.3+45",
		},
		"version line not first": {
			content: "name: driver\ndescription: An app.\nversion: 0.4.0+9\n",
			want:    "0.4.0+9",
		},
		"missing version line": {
			content:  "name: driver\ndescription: An app.\n",
			wantErr:  true,
			wantKind: relerr.MalformedManifest,
		},
		"unparseable version value": {
			content:  "version: not.a.version\n",
			wantErr:  true,
			wantKind: relerr.MalformedManifest,
		},
		"version key without colon is ignored": {
			content:  "versioning scheme\nname: driver\n",
			wantErr:  true,
			wantKind: relerr.MalformedManifest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Load(writeManifest(t, tt.content))
			require.NoError(t, err)

			v, err := m.Version()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, relerr.IsKind(err, tt.wantKind), "kind mismatch: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.MalformedManifest))
}

func TestSetVersion_PreservesOtherLines(t *testing.T) {
	path := writeManifest(t, "name: driver\ndescription: An app.\nversion: 1.2.3+45\nsdk: stable\n")

	m, err := Load(path)
	require.NoError(t, err)

	next := version.Version{Major: 1, Minor: 2, Patch: 4, Build: 46, HasBuild: true}
	require.NoError(t, m.SetVersion(next))
	require.NoError(t, m.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: driver\ndescription: An app.\nversion: 1.2.4+46\nsdk: stable\n", string(data))
}

func TestSetVersion_KeepsIndentation(t *testing.T) {
	path := writeManifest(t, "project:\n  version: 2.0.0\n")

	m, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, m.SetVersion(version.Version{Major: 2, Minor: 0, Patch: 1}))
	require.NoError(t, m.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "project:\n  version: 2.0.1\n", string(data))
}

func TestNextVersion_DoesNotMutateManifest(t *testing.T) {
	content := "version: 1.2.3\n"
	path := writeManifest(t, content)

	m, err := Load(path)
	require.NoError(t, err)

	_, err = m.NextVersion("", "abc")
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.InvalidBuildNumber))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestNextVersion(t *testing.T) {
	m, err := Load(writeManifest(t, "version: 1.2.3+45\n"))
	require.NoError(t, err)

	next, err := m.NextVersion("", "")
	require.NoError(t, err)
	assert.Equal(t, "1.2.4+46", next.String())
}
