package domain

import "fmt"

// PassingScore is the lowest score for which a document is considered valid.
const PassingScore = 70

// ValidationResult is the compliance verdict of a document against a schema.
// It is built fresh for every validation and never persisted.
type ValidationResult struct {
	// IsValid is true when Score >= PassingScore.
	IsValid bool

	// Score is the compliance score in [0, 100].
	Score int

	// Issues lists problems found, in detection order.
	Issues []string

	// Suggestions lists remediation hints.
	Suggestions []string
}

// ValidationReport is a ValidationResult annotated for presentation.
type ValidationReport struct {
	ValidationResult

	// SchemaKind is the schema the document was validated against.
	SchemaKind SchemaKind

	// Summary is a one-line human-readable verdict.
	Summary string
}

// NewValidationReport wraps a result with its schema kind and summary line.
func NewValidationReport(kind SchemaKind, result ValidationResult) *ValidationReport {
	return &ValidationReport{
		ValidationResult: result,
		SchemaKind:       kind,
		Summary:          ValidationSummary(result),
	}
}

// ValidationSummary renders the one-line verdict for a result.
func ValidationSummary(result ValidationResult) string {
	if result.IsValid {
		return "✅ Document structure is valid"
	}
	return fmt.Sprintf("❌ Document has %d issues (score: %d/100)", len(result.Issues), result.Score)
}

// GeneratedTemplate is a skeleton document derived from a schema.
type GeneratedTemplate struct {
	// SchemaKind is the schema the template was derived from.
	SchemaKind SchemaKind

	// Content is the skeleton Markdown.
	Content string

	// OutputPath is where the template was written, empty when not saved.
	OutputPath string
}
