package domain

// Heading is a single Markdown heading line.
type Heading struct {
	// Level is the number of leading '#' characters (at least 1).
	Level int

	// Text is the heading title with the marker and surrounding whitespace removed.
	Text string

	// Index is the position of the heading in document order, starting at 0.
	Index int
}

// StructureSummary is the ordered heading outline of a document.
// SectionTitles[i] always equals Headings[i].Text.
type StructureSummary struct {
	Headings      []Heading
	SectionTitles []string
}

// Len returns the number of headings.
func (s StructureSummary) Len() int {
	return len(s.Headings)
}

// IsEmpty returns true if the summary holds no headings.
func (s StructureSummary) IsEmpty() bool {
	return len(s.Headings) == 0
}
