package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	at := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "# 1.2.3 [07.03.2026 09:05]", Header("1.2.3", at))
}

func TestHeader_WithBuildNumber(t *testing.T) {
	at := time.Date(2026, time.December, 24, 18, 30, 0, 0, time.Local)
	assert.Equal(t, "# 1.2.3+45 [24.12.2026 18:30]", Header("1.2.3+45", at))
}

func TestPrependSection(t *testing.T) {
	doc := &Document{Lines: []string{
		"# 1.2.2 [01.01.2026 10:00]",
		"",
		"- [fix] Old fix",
	}}

	at := time.Date(2026, time.February, 2, 12, 0, 0, 0, time.Local)
	doc.PrependSection("1.2.3", []Entry{
		{Kind: KindFeature, Text: "- [feature] Add login"},
		{Kind: KindFix, Text: "- [fix] Crash on start"},
	}, at)

	assert.Equal(t, []string{
		"# 1.2.3 [02.02.2026 12:00]",
		"",
		"- [feature] Add login",
		"- [fix] Crash on start",
		"# 1.2.2 [01.01.2026 10:00]",
		"",
		"- [fix] Old fix",
	}, doc.Lines)
}

func TestPrependSection_EmptyDocument(t *testing.T) {
	doc := &Document{}
	doc.PrependSection("1.0.0", []Entry{{Kind: KindDevImprovement, Text: FallbackEntry}}, time.Now())

	assert.Len(t, doc.Lines, 3)
	assert.Equal(t, FallbackEntry, doc.Lines[2])
}

// Prepending never reorders or rewrites the existing sections.
func TestPrependSection_ExistingSectionsUntouched(t *testing.T) {
	existing := []string{
		"# 0.2.0 [05.05.2025 08:00]",
		"",
		"- [improvement] Faster sync",
		"# 0.1.0 [01.04.2025 08:00]",
		"",
		"- [feature] First release",
	}
	doc := &Document{Lines: append([]string(nil), existing...)}

	doc.PrependSection("0.3.0", []Entry{{Kind: KindFix, Text: "- [fix] Sync loop"}}, time.Now())

	assert.Equal(t, existing, doc.Lines[len(doc.Lines)-len(existing):])
}
