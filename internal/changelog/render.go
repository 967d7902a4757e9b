package changelog

import (
	"fmt"
	"time"
)

// headerTimeLayout renders section timestamps as dd.MM.yyyy HH:mm,
// zero-padded, 24-hour, local time.
const headerTimeLayout = "02.01.2006 15:04"

// Header builds the section header line for a version at the given time.
func Header(version string, at time.Time) string {
	return fmt.Sprintf("# %s [%s]", version, at.Format(headerTimeLayout))
}

// PrependSection inserts a new version section at the very top of the
// document: the header line, a blank line, then one line per entry. Existing
// sections are shifted down untouched; entry order is preserved as given
// (the classifier has already sorted them).
func (d *Document) PrependSection(version string, entries []Entry, at time.Time) {
	section := make([]string, 0, len(entries)+2)
	section = append(section, Header(version, at), "")
	for _, e := range entries {
		section = append(section, e.Text)
	}

	d.Lines = append(section, d.Lines...)
}
