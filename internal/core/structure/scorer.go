package structure

import (
	"strings"
	"unicode/utf16"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// Scoring rules.
const (
	maxScore = 100

	missingSectionPenalty = 15
	shortDocumentPenalty  = 10
	hierarchyPenalty      = 5

	// minDocumentLength is measured in UTF-16 code units.
	minDocumentLength = 200

	// maxIndentStep is the largest indent increase between consecutive headings.
	maxIndentStep = 2

	optionalMarker = "optional"
)

// Issue and suggestion messages.
const (
	MissingSectionIssue = "Missing required section: "
	ShortDocumentIssue  = "Document appears to be too short"
	ShortDocumentAdvice = "Consider adding more detailed content to each section"
	BadHierarchyIssue   = "Improper heading hierarchy detected"
)

// RequiredSections returns the schema titles that do not mention "optional".
func RequiredSections(schema domain.StructureSummary) []string {
	required := make([]string, 0, len(schema.SectionTitles))
	for _, title := range schema.SectionTitles {
		if !strings.Contains(strings.ToLower(title), optionalMarker) {
			required = append(required, title)
		}
	}
	return required
}

// Score grades a document outline against a schema outline.
// documentText is the raw document, used for the length check.
func Score(documentText string, document, schema domain.StructureSummary) domain.ValidationResult {
	issues := []string{}
	suggestions := []string{}
	score := maxScore

	for _, required := range RequiredSections(schema) {
		if !hasSection(document, required) {
			issues = append(issues, MissingSectionIssue+required)
			score -= missingSectionPenalty
		}
	}

	if textLength(documentText) < minDocumentLength {
		issues = append(issues, ShortDocumentIssue)
		suggestions = append(suggestions, ShortDocumentAdvice)
		score -= shortDocumentPenalty
	}

	if !hierarchyOK(document) {
		issues = append(issues, BadHierarchyIssue)
		score -= hierarchyPenalty
	}

	score = max(0, score)
	return domain.ValidationResult{
		IsValid:     score >= domain.PassingScore,
		Score:       score,
		Issues:      issues,
		Suggestions: suggestions,
	}
}

// Validate extracts both outlines and scores the document against the schema.
func Validate(documentText, schemaText string) domain.ValidationResult {
	return Score(documentText, ExtractStructure(documentText), ExtractStructure(schemaText))
}

// hasSection reports whether any document title contains required, ignoring case.
func hasSection(document domain.StructureSummary, required string) bool {
	needle := strings.ToLower(required)
	for _, title := range document.SectionTitles {
		if strings.Contains(strings.ToLower(title), needle) {
			return true
		}
	}
	return false
}

// hierarchyOK reports whether no heading is indented more than one step
// deeper than the heading before it.
func hierarchyOK(document domain.StructureSummary) bool {
	for i := 1; i < len(document.Headings); i++ {
		if indent(document.Headings[i]) > indent(document.Headings[i-1])+maxIndentStep {
			return false
		}
	}
	return true
}

// textLength counts UTF-16 code units, so astral characters count twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
