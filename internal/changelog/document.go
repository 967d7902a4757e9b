package changelog

import (
	"fmt"
	"os"
	"strings"

	relerr "github.com/relkit/relkit/internal/errors"
)

// Document is an in-memory changelog document as an ordered sequence of
// lines. The zero value is an empty document.
type Document struct {
	Path  string
	Lines []string
}

// Load reads the changelog document at path. A missing file is a classified
// MissingChangelog failure.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, relerr.Newf(relerr.MissingChangelog, "no changelog found at %s", path)
		}
		return nil, fmt.Errorf("reading changelog %s: %w", path, err)
	}
	return &Document{Path: path, Lines: splitLines(string(data))}, nil
}

// LoadOrEmpty reads the document at path, returning an empty document when
// the file does not exist yet. Used for the production changelog, which is
// created on first extraction.
func LoadOrEmpty(path string) (*Document, error) {
	doc, err := Load(path)
	if relerr.IsKind(err, relerr.MissingChangelog) {
		return &Document{Path: path}, nil
	}
	return doc, err
}

// Write persists the document back to disk with a trailing newline.
func (d *Document) Write() error {
	content := strings.Join(d.Lines, "\n") + "\n"
	if err := os.WriteFile(d.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", d.Path, err)
	}
	return nil
}

// FirstSection returns the document's first version section: the lines from
// the first header through the line before the next header. Returns nil when
// the document has no header at all.
func (d *Document) FirstSection() []string {
	start := -1
	for i, line := range d.Lines {
		if isHeader(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	end := len(d.Lines)
	for i := start + 1; i < len(d.Lines); i++ {
		if isHeader(d.Lines[i]) {
			end = i
			break
		}
	}
	return d.Lines[start:end]
}

// isHeader reports whether a line opens a version section.
func isHeader(line string) bool {
	return strings.HasPrefix(line, "# ")
}

// splitLines splits file content into lines, dropping a single trailing
// newline so an empty file yields no lines.
func splitLines(content string) []string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
