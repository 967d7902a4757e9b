// Package release orchestrates the changelog-derived versioning pipeline:
// computing the next version, mining and classifying commits since the last
// changelog edit, rendering the new section, and driving the git side of the
// release. Steps run strictly in order and the first failure aborts the
// whole invocation; there is no rollback and no retry.
package release

import (
	"fmt"
	"io"
	"time"

	"github.com/relkit/relkit/internal/changelog"
	"github.com/relkit/relkit/internal/config"
	"github.com/relkit/relkit/internal/git"
	"github.com/relkit/relkit/internal/manifest"
	"github.com/relkit/relkit/internal/output"
	"github.com/relkit/relkit/internal/version"
)

// Options are the release command's knobs.
type Options struct {
	// Branch to check out before releasing. Empty keeps the current branch.
	Branch string
	// ExplicitVersion overrides the computed MAJOR.MINOR.PATCH.
	ExplicitVersion string
	// ExplicitBuild overrides the computed build number.
	ExplicitBuild string
	// TagPrefix overrides the configured tag prefix.
	TagPrefix string
	// CI disables tag signing, for environments without a GPG key.
	CI bool
}

// Result describes what a release produced.
type Result struct {
	Version version.Version
	Entries []changelog.Entry
	Branch  string
	Tag     string
	Section []string
}

// Run executes the full release pipeline. Progress lines go to out.
func Run(cfg *config.Configuration, repo *git.Repo, opts Options, now time.Time, out io.Writer) (*Result, error) {
	if opts.Branch != "" {
		if err := repo.Checkout(opts.Branch); err != nil {
			return nil, err
		}
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		return nil, err
	}

	man, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	next, err := man.NextVersion(opts.ExplicitVersion, opts.ExplicitBuild)
	if err != nil {
		return nil, err
	}
	output.PrintStep(out, fmt.Sprintf("Releasing %s on %s", next, branch))

	entries, err := collectEntries(cfg, repo)
	if err != nil {
		return nil, err
	}
	if len(entries) == 1 && entries[0].Text == changelog.FallbackEntry {
		output.PrintWarning(out, "no tagged commits since the last changelog update, recording developer changes")
	}

	doc, err := changelog.Load(cfg.Changelog)
	if err != nil {
		return nil, err
	}
	doc.PrependSection(next.String(), entries, now)
	if err := doc.Write(); err != nil {
		return nil, err
	}

	if err := man.SetVersion(next); err != nil {
		return nil, err
	}
	if err := man.Write(); err != nil {
		return nil, err
	}

	if _, err := repo.CommitAll("Release " + next.String()); err != nil {
		return nil, err
	}

	prefix := opts.TagPrefix
	if prefix == "" {
		prefix = cfg.TagPrefix
	}
	tag := prefix + next.String()
	if err := repo.CreateTag(tag, !opts.CI); err != nil {
		return nil, err
	}

	output.PrintStep(out, fmt.Sprintf("Pushing %s and %s to %s", branch, tag, cfg.Remote))
	if err := repo.Push(cfg.Remote, branch); err != nil {
		return nil, err
	}
	if err := repo.Push(cfg.Remote, tag); err != nil {
		return nil, err
	}

	section, _ := doc.Extract(next.String())
	return &Result{
		Version: next,
		Entries: entries,
		Branch:  branch,
		Tag:     tag,
		Section: section,
	}, nil
}

// collectEntries mines commit messages since the last commit that touched
// the changelog and classifies them. A changelog that was never committed
// yields the whole history.
func collectEntries(cfg *config.Configuration, repo *git.Repo) ([]changelog.Entry, error) {
	since, err := repo.LastCommitTouching(cfg.Changelog)
	if err != nil {
		return nil, err
	}

	messages, err := repo.MessagesSince(since)
	if err != nil {
		return nil, err
	}

	return changelog.Classify(messages, cfg.Scope), nil
}
