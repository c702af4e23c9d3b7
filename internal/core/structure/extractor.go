package structure

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

const headingMarker = '#'

// ExtractStructure returns the headings of text in document order.
// A heading is any line whose trimmed form starts with '#'.
func ExtractStructure(text string) domain.StructureSummary {
	summary := domain.StructureSummary{
		Headings:      []domain.Heading{},
		SectionTitles: []string{},
	}

	for _, line := range strings.Split(text, "\n") {
		level, title, ok := parseHeading(line)
		if !ok {
			continue
		}
		summary.Headings = append(summary.Headings, domain.Heading{
			Level: level,
			Text:  title,
			Index: len(summary.Headings),
		})
		summary.SectionTitles = append(summary.SectionTitles, title)
	}

	return summary
}

// parseHeading splits a heading line into its level and title.
// ok is false when the line is not a heading.
func parseHeading(line string) (level int, title string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] != headingMarker {
		return 0, "", false
	}
	rest := strings.TrimLeft(trimmed, string(headingMarker))
	return len(trimmed) - len(rest), strings.TrimSpace(rest), true
}

// headingLevel returns the level of a heading line, or 0 for other lines.
func headingLevel(line string) int {
	level, _, _ := parseHeading(line)
	return level
}

// Render returns the outline form of a heading: two spaces per level
// below the top, followed by the title.
func Render(h domain.Heading) string {
	return strings.Repeat("  ", h.Level-1) + h.Text
}

// indent returns the position of the first non-whitespace character of
// the rendered heading, or -1 when the heading has no title.
func indent(h domain.Heading) int {
	return strings.IndexFunc(Render(h), func(r rune) bool {
		return !unicode.IsSpace(r)
	})
}
