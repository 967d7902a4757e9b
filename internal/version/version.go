// Package version implements the semantic version and build number
// arithmetic used by the release pipeline. A version is the canonical
// "MAJOR.MINOR.PATCH" triple, optionally suffixed with "+BUILD" as stored
// in the project manifest.
package version

import (
	"fmt"
	"strconv"
	"strings"

	relerr "github.com/relkit/relkit/internal/errors"
)

// Version is a parsed manifest version. Build is only meaningful when
// HasBuild is true; a manifest version without a build suffix stays
// without one across increments.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Build    int
	HasBuild bool
}

// String renders the canonical text form: "1.2.3" or "1.2.3+45".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.HasBuild {
		s += "+" + strconv.Itoa(v.Build)
	}
	return s
}

// Short renders the version without the build suffix.
func (v Version) Short() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses "MAJOR.MINOR.PATCH" or "MAJOR.MINOR.PATCH+BUILD" into a
// Version. All components must be non-negative integers.
func Parse(s string) (Version, error) {
	var v Version

	base := s
	if idx := strings.Index(s, "+"); idx >= 0 {
		base = s[:idx]
		build, err := parseComponent(s[idx+1:])
		if err != nil {
			return Version{}, fmt.Errorf("invalid build number in %q", s)
		}
		v.Build = build
		v.HasBuild = true
	}

	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("expected three dot-separated components, got %q", base)
	}

	components := make([]int, 3)
	for i, p := range parts {
		n, err := parseComponent(p)
		if err != nil {
			return Version{}, fmt.Errorf("non-numeric version component %q in %q", p, s)
		}
		components[i] = n
	}

	v.Major, v.Minor, v.Patch = components[0], components[1], components[2]
	return v, nil
}

// parseComponent parses a single non-negative integer component.
func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative component %d", n)
	}
	return n, nil
}

// Next computes the release version that follows current.
//
// When explicitVersion is non-empty it replaces the major.minor.patch triple
// and must be exactly three dot-separated non-negative integers. Otherwise
// the patch component is incremented by one.
//
// When explicitBuild is non-empty it replaces the build number and must be a
// non-negative integer. Otherwise the current build number, if any, is
// incremented by one; a version without a build number yields a result
// without one.
func Next(current Version, explicitVersion, explicitBuild string) (Version, error) {
	next := Version{
		Major: current.Major,
		Minor: current.Minor,
		Patch: current.Patch + 1,
	}

	if explicitVersion != "" {
		parsed, err := Parse(explicitVersion)
		if err != nil || parsed.HasBuild {
			return Version{}, relerr.New(relerr.InvalidVersion,
				fmt.Sprintf("invalid version %q: expected MAJOR.MINOR.PATCH", explicitVersion))
		}
		next.Major, next.Minor, next.Patch = parsed.Major, parsed.Minor, parsed.Patch
	}

	switch {
	case explicitBuild != "":
		build, err := parseComponent(explicitBuild)
		if err != nil {
			return Version{}, relerr.New(relerr.InvalidBuildNumber,
				fmt.Sprintf("invalid build number %q: expected a non-negative integer", explicitBuild))
		}
		next.Build = build
		next.HasBuild = true
	case current.HasBuild:
		next.Build = current.Build + 1
		next.HasBuild = true
	}

	return next, nil
}
