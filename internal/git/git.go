// Package git provides the repository operations the release pipeline
// depends on: branch inspection and checkout, committing the release
// artifacts, tagging, pushing, and mining commit messages since the last
// changelog edit. It uses the go-git library for core operations and falls
// back to the git CLI only for signed tags, which go-git cannot produce.
package git

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger to enable
// debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps an opened git repository rooted at the project directory.
type Repo struct {
	repo *git.Repository
}

// Open opens the git repository at the specified path or, when path is
// empty, the current working directory. DetectDotGit traverses up the
// directory tree to find the repository root.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repo{repo: repo}, nil
}

// CurrentBranch returns the name of the checked-out branch.
// Returns empty string in detached HEAD state.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}

	branch := head.Name().Short()
	logDebug("[git] CurrentBranch: %s", branch)
	return branch, nil
}

// Branches returns the names of all local branches, sorted.
func (r *Repo) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if strings.Contains(name, "HEAD") {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating branches: %w", err)
	}

	sort.Strings(names)
	logDebug("[git] Branches: found %d branches", len(names))
	return names, nil
}

// Checkout switches the worktree to the named branch. Untracked content is
// preserved across the switch.
func (r *Repo) Checkout(branch string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	err = worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Keep:   true,
	})
	if err != nil {
		return fmt.Errorf("checking out branch %q: %w", branch, err)
	}

	logDebug("[git] Checkout: switched to %s", branch)
	return nil
}

// CommitAll stages every modified tracked file and commits with the given
// message. Returns the new commit hash.
func (r *Repo) CommitAll(message string) (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{All: true})
	if err != nil {
		return "", fmt.Errorf("committing %q: %w", message, err)
	}

	logDebug("[git] CommitAll: %s (%s)", message, hash.String()[:8])
	return hash.String(), nil
}

// LastCommitTouching returns the hash of the most recent commit that changed
// the given path, or empty string if no commit touched it.
func (r *Repo) LastCommitTouching(path string) (string, error) {
	iter, err := r.repo.Log(&git.LogOptions{FileName: &path})
	if err != nil {
		return "", fmt.Errorf("walking history for %s: %w", path, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		logDebug("[git] LastCommitTouching: no commits for %s", path)
		return "", nil
	}

	logDebug("[git] LastCommitTouching: %s last changed in %s", path, commit.Hash.String()[:8])
	return commit.Hash.String(), nil
}

// MessagesSince returns the full commit messages from HEAD back to (not
// including) the commit with the given hash. An empty hash returns the whole
// history. Messages are ordered newest-first.
func (r *Repo) MessagesSince(hash string) ([]string, error) {
	iter, err := r.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	defer iter.Close()

	var messages []string
	stop := fmt.Errorf("stop")
	err = iter.ForEach(func(c *object.Commit) error {
		if hash != "" && c.Hash.String() == hash {
			return stop
		}
		messages = append(messages, c.Message)
		return nil
	})
	if err != nil && err != stop {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	logDebug("[git] MessagesSince: %d commits since %s", len(messages), hash)
	return messages, nil
}
