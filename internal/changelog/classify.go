package changelog

import (
	"sort"
	"strings"
)

// FallbackEntry is the synthetic entry produced when no commit line
// qualifies. It guarantees every release renders a non-empty section.
const FallbackEntry = "- [dev-improvement] Developer changes."

// Classify filters and tags commit messages by the recognized change-kind
// markers. Every line of every message body is evaluated independently, so a
// multi-line commit may contribute several entries.
//
// When scope is non-empty, a line qualifies either by starting with the
// scope marker "[scope]" followed immediately by a tag marker, or by
// starting with a tag marker while the remainder of the line still contains
// the scope marker. Both branches are checked independently; the first that
// matches wins.
//
// Qualifying lines are normalized to begin with "- " and the result is
// sorted lexicographically so the rendered section is deterministic
// regardless of commit order. If nothing qualifies, the single FallbackEntry
// is returned.
func Classify(messages []string, scope string) []Entry {
	var entries []Entry

	for _, message := range messages {
		for _, raw := range strings.Split(message, "\n") {
			line := strings.TrimSpace(raw)
			line = strings.TrimPrefix(line, "- ")
			if line == "" {
				continue
			}

			kind, ok := matchLine(line, scope)
			if !ok {
				continue
			}
			entries = append(entries, Entry{Kind: kind, Text: "- " + line})
		}
	}

	if len(entries) == 0 {
		return []Entry{{Kind: KindDevImprovement, Text: FallbackEntry}}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Text < entries[j].Text
	})
	return entries
}

// matchLine reports whether a trimmed commit line qualifies and which kind
// tagged it.
func matchLine(line, scope string) (Kind, bool) {
	if scope == "" {
		return kindPrefix(line)
	}

	scopeMarker := "[" + scope + "]"

	// Scoped form: "[scope][tag] ..." with the tag marker immediately after
	// the scope marker.
	if strings.HasPrefix(line, scopeMarker) {
		if kind, ok := kindPrefix(line[len(scopeMarker):]); ok {
			return kind, true
		}
	}

	// Tag-first form: "[tag] ... [scope] ..." with the scope marker anywhere
	// in the rest of the line.
	if kind, ok := kindPrefix(line); ok {
		rest := line[len(kind.Marker()):]
		if strings.Contains(rest, scopeMarker) {
			return kind, true
		}
	}

	return "", false
}

// kindPrefix returns the first recognized tag marker the line starts with.
func kindPrefix(line string) (Kind, bool) {
	for _, k := range kinds {
		if strings.HasPrefix(line, k.Marker()) {
			return k, true
		}
	}
	return "", false
}
