package changelog

import (
	"regexp"
	"strings"

	relerr "github.com/relkit/relkit/internal/errors"
)

var (
	// markerRe matches bracketed word or issue-number annotations, e.g.
	// "[fix]" or "[1234]", with any trailing space. Used to clean entries
	// for production-facing output.
	markerRe = regexp.MustCompile(`\[([a-z]+|[0-9]+)\] ?`)

	// genericHeaderRe matches anything that looks like a section header,
	// including malformed ones without the space after '#'.
	genericHeaderRe = regexp.MustCompile(`^#.*\[`)
)

// Extract returns the body lines of the section for version.
//
// The opening header is found by substring containment of "{version} ["
// within a header-shaped line, with no anchor between the leading '#' and
// the version token. A version that is a suffix of another (e.g. "1.2.3"
// inside "11.2.3") therefore matches the longer version's header too. That
// behavior is long-standing and kept for compatibility.
//
// Collection runs until the next line starting with "# "; neither header is
// included. Leading and trailing blank lines of the collected block are
// trimmed. The second return value is false when no matching header exists,
// distinguishing "not found" from "found but empty".
func (d *Document) Extract(version string) ([]string, bool) {
	opener := version + " ["

	var lines []string
	found := false
	for _, line := range d.Lines {
		if !found {
			if headerContains(line, opener) {
				found = true
			}
			continue
		}
		if strings.HasPrefix(line, "# ") {
			break
		}
		lines = append(lines, line)
	}

	return trimBlankEdges(lines), found
}

// ProdSection is a production-cleaned version section: the original header
// line plus the surviving cleaned entry lines.
type ProdSection struct {
	Header string
	Lines  []string
}

// ExtractProduction extracts and cleans the section for version for
// production-facing output. On top of the plain extraction rules it:
//
//   - stops early at a repeated header for the same version ("{version} ["
//     or "{version}+" in a header line), guarding against duplicated sections
//   - skips malformed header-like lines other than the opener
//   - skips development-only entries ("- [dev-...")
//   - strips bracketed tag and issue-number annotations from each line
//   - drops lines left empty by the cleanup
//
// Returns a classified VersionNotFound failure when no header matches.
func (d *Document) ExtractProduction(version string) (*ProdSection, error) {
	opener := version + " ["
	duplicate := version + "+"

	section := &ProdSection{}
	found := false
	for _, line := range d.Lines {
		if !found {
			if headerContains(line, opener) {
				found = true
				section.Header = line
			}
			continue
		}

		if headerContains(line, opener) || headerContains(line, duplicate) {
			break
		}
		if strings.HasPrefix(line, "# ") {
			break
		}
		if genericHeaderRe.MatchString(line) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "- [dev-") {
			continue
		}

		cleaned := strings.TrimRight(markerRe.ReplaceAllString(line, ""), " ")
		if strings.TrimSpace(cleaned) == "" {
			continue
		}
		section.Lines = append(section.Lines, cleaned)
	}

	if !found {
		return nil, relerr.Newf(relerr.VersionNotFound, "No changelog found for version %s", version)
	}
	return section, nil
}

// Render returns the section as document lines: header, blank line, entries.
func (s *ProdSection) Render() []string {
	lines := make([]string, 0, len(s.Lines)+2)
	lines = append(lines, s.Header, "")
	return append(lines, s.Lines...)
}

// headerContains reports whether line is header-shaped (starts with '#')
// and contains the marker anywhere after it.
func headerContains(line, marker string) bool {
	return strings.HasPrefix(line, "#") && strings.Contains(line, marker)
}

// trimBlankEdges removes leading and trailing blank lines from a block.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
