// Package manifest reads and rewrites the project manifest file that holds
// the current version string. The manifest is treated as an opaque sequence
// of lines; only the single line starting with the version key is replaced,
// everything else is preserved verbatim.
package manifest

import (
	"fmt"
	"os"
	"strings"

	relerr "github.com/relkit/relkit/internal/errors"
	"github.com/relkit/relkit/internal/version"
)

// versionKey is the manifest token that introduces the version line.
const versionKey = "version"

// Manifest is an in-memory copy of a manifest file's lines.
type Manifest struct {
	path  string
	lines []string
}

// Load reads the manifest file at path into memory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, relerr.Newf(relerr.MalformedManifest, "cannot read manifest %s: %v", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return &Manifest{path: path, lines: lines}, nil
}

// versionLineIndex returns the index of the version line, or -1.
// The version line is the first line whose trimmed content starts with
// "version" followed by a colon.
func (m *Manifest) versionLineIndex() int {
	for i, line := range m.lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, versionKey) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, versionKey))
		if strings.HasPrefix(rest, ":") {
			return i
		}
	}
	return -1
}

// Version parses the current version from the manifest's version line.
func (m *Manifest) Version() (version.Version, error) {
	idx := m.versionLineIndex()
	if idx < 0 {
		return version.Version{}, relerr.Newf(relerr.MalformedManifest,
			"no %q line found in %s", versionKey+":", m.path)
	}

	value := strings.TrimSpace(m.lines[idx])
	value = strings.TrimSpace(strings.TrimPrefix(value, versionKey))
	value = strings.TrimSpace(strings.TrimPrefix(value, ":"))

	v, err := version.Parse(value)
	if err != nil {
		return version.Version{}, relerr.Newf(relerr.MalformedManifest,
			"unparseable version %q in %s: %v", value, m.path, err)
	}
	return v, nil
}

// SetVersion replaces the version line in place, preserving the original
// indentation and every other line.
func (m *Manifest) SetVersion(v version.Version) error {
	idx := m.versionLineIndex()
	if idx < 0 {
		return relerr.Newf(relerr.MalformedManifest, "no %q line found in %s", versionKey+":", m.path)
	}

	indent := m.lines[idx][:len(m.lines[idx])-len(strings.TrimLeft(m.lines[idx], " \t"))]
	m.lines[idx] = fmt.Sprintf("%s%s: %s", indent, versionKey, v)
	return nil
}

// Write persists the manifest back to disk with a trailing newline.
func (m *Manifest) Write() error {
	content := strings.Join(m.lines, "\n") + "\n"
	if err := os.WriteFile(m.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", m.path, err)
	}
	return nil
}

// Path returns the manifest file path.
func (m *Manifest) Path() string {
	return m.path
}

// NextVersion computes the next release version from the manifest's current
// version line, applying optional explicit overrides. The manifest is not
// mutated; callers persist the result with SetVersion and Write once the
// rest of the release preparation has succeeded.
func (m *Manifest) NextVersion(explicitVersion, explicitBuild string) (version.Version, error) {
	current, err := m.Version()
	if err != nil {
		return version.Version{}, err
	}
	return version.Next(current, explicitVersion, explicitBuild)
}
