// Package testutil provides test fixtures for relkit tests, mainly temporary
// git repositories with configured identities so worktree commits succeed.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"
)

// InitRepo initializes a git repository in dir with a test identity.
func InitRepo(t *testing.T, dir string) *gogit.Repository {
	t.Helper()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "relkit test"
	cfg.User.Email = "relkit@test.invalid"
	require.NoError(t, repo.SetConfig(cfg))

	return repo
}

// InitBareRepo initializes a bare repository in dir, usable as a push target.
func InitBareRepo(t *testing.T, dir string) {
	t.Helper()

	_, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)
}

// AddRemote points repo's named remote at a local path.
func AddRemote(t *testing.T, repo *gogit.Repository, name, url string) {
	t.Helper()

	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	require.NoError(t, err)
}

// Commit writes the given files under dir, stages them, and commits with
// message. With no files an empty commit is created. Returns the hash.
func Commit(t *testing.T, repo *gogit.Repository, dir, message string, files map[string]string) string {
	t.Helper()

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}

	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		AllowEmptyCommits: len(files) == 0,
	})
	require.NoError(t, err)
	return hash.String()
}
