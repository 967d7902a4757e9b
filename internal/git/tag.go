package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	relerr "github.com/relkit/relkit/internal/errors"
)

// CreateTag creates an annotated tag at HEAD. Signed tags require GPG and
// are delegated to the git CLI, which go-git does not support.
func (r *Repo) CreateTag(name string, signed bool) error {
	if signed {
		return r.createSignedTag(name)
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Message: name,
	})
	if err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}

	logDebug("[git] CreateTag: %s", name)
	return nil
}

// createSignedTag shells out to the git CLI for GPG-signed tags.
func (r *Repo) createSignedTag(name string) error {
	cmd := exec.Command("git", "tag", "-s", name, "-m", name)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return relerr.Newf(relerr.ExternalCommand, "git tag -s %s failed: %s", name, detail)
	}

	logDebug("[git] CreateTag: %s (signed)", name)
	return nil
}

// Push pushes a single ref (branch or tag) to the named remote.
func (r *Repo) Push(remote, ref string) error {
	auth := r.remoteAuth(remote)

	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", ref, ref))
	if _, err := r.repo.Tag(ref); err == nil {
		refSpec = config.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", ref, ref))
	}

	err := r.repo.Push(&git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
	})
	if err == git.NoErrAlreadyUpToDate {
		logDebug("[git] Push: %s already up to date on %s", ref, remote)
		return nil
	}
	if err != nil {
		return relerr.WrapWithMessage(err, relerr.ExternalCommand,
			fmt.Sprintf("pushing %s to %s", ref, remote))
	}

	logDebug("[git] Push: %s -> %s", ref, remote)
	return nil
}

// remoteAuth returns the authentication method for the remote's URL.
// SSH URLs use SSH agent auth, HTTPS URLs use environment credentials.
func (r *Repo) remoteAuth(name string) transport.AuthMethod {
	remote, err := r.repo.Remote(name)
	if err != nil || len(remote.Config().URLs) == 0 {
		return nil
	}
	url := remote.Config().URLs[0]

	if isSSHURL(url) {
		auth, err := ssh.NewSSHAgentAuth("git")
		if err != nil {
			logDebug("[git] SSH agent auth failed: %v", err)
			return nil
		}
		return auth
	}

	username := os.Getenv("GIT_USERNAME")
	password := os.Getenv("GIT_PASSWORD")
	if username == "" {
		username = os.Getenv("GITHUB_TOKEN")
		if username != "" {
			password = ""
		}
	}

	if username != "" {
		return &http.BasicAuth{
			Username: username,
			Password: password,
		}
	}

	return nil
}

// isSSHURL checks if a URL is an SSH URL.
// Detects git@ (SCP-style), ssh://, and git+ssh:// schemes.
func isSSHURL(url string) bool {
	return strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "ssh://") ||
		strings.HasPrefix(url, "git+ssh://")
}
