package release

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

func prodConfig(t *testing.T, changelogContent string) *config.Configuration {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Configuration{
		Changelog:     filepath.Join(dir, "CHANGELOG.md"),
		ProdChangelog: filepath.Join(dir, "CHANGELOG_PROD.md"),
	}
	if changelogContent != "" {
		require.NoError(t, os.WriteFile(cfg.Changelog, []byte(changelogContent), 0o644))
	}
	return cfg
}

const devChangelog = `# 1.2.3 [01.01.2024 10:00]

- [feature] Add login [1042]
- [dev-fix] Flaky test
- [fix] Crash on start
# 1.2.2 [20.12.2023 17:45]

- [fix] Old fix
`

func TestProductionChangelog(t *testing.T) {
	cfg := prodConfig(t, devChangelog)

	section, err := ProductionChangelog(cfg, "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, []string{"- Add login", "- Crash on start"}, section.Lines)

	data, err := os.ReadFile(cfg.ProdChangelog)
	require.NoError(t, err)
	assert.Equal(t, "# 1.2.3 [01.01.2024 10:00]\n\n- Add login\n- Crash on start\n", string(data))
}

func TestProductionChangelog_SecondRunFails(t *testing.T) {
	cfg := prodConfig(t, devChangelog)

	_, err := ProductionChangelog(cfg, "1.2.3")
	require.NoError(t, err)

	_, err = ProductionChangelog(cfg, "1.2.3")
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.NoNewChanges), "want NoNewChanges, got %v", err)
}

func TestProductionChangelog_PrependsAboveOlderSections(t *testing.T) {
	cfg := prodConfig(t, devChangelog)
	require.NoError(t, os.WriteFile(cfg.ProdChangelog,
		[]byte("# 1.2.2 [20.12.2023 17:45]\n\n- Old fix\n"), 0o644))

	_, err := ProductionChangelog(cfg, "1.2.3")
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ProdChangelog)
	require.NoError(t, err)
	assert.Equal(t,
		"# 1.2.3 [01.01.2024 10:00]\n\n- Add login\n- Crash on start\n# 1.2.2 [20.12.2023 17:45]\n\n- Old fix\n",
		string(data))
}

func TestProductionChangelog_MissingChangelog(t *testing.T) {
	cfg := prodConfig(t, "")

	_, err := ProductionChangelog(cfg, "1.2.3")
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.MissingChangelog))
}

func TestProductionChangelog_VersionNotFound(t *testing.T) {
	cfg := prodConfig(t, devChangelog)

	_, err := ProductionChangelog(cfg, "9.9.9")
	require.Error(t, err)
	assert.True(t, relerr.IsKind(err, relerr.VersionNotFound))
}
