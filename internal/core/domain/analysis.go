package domain

import "math"

// StandardDocFiles returns the documentation files every project is expected to carry.
func StandardDocFiles() []string {
	return []string{
		"README.md", "FEATURES.md", "TODO.md", "BACKLOG.md",
		"CHANGELOG.md", "CONTRIBUTING.md", "ARCHITECTURE.md",
	}
}

// MinimumDocFiles is the number of standard files below which more documentation is recommended.
const MinimumDocFiles = 3

// Recommendations emitted by project analysis.
const (
	RecommendReadme       = "Create a README.md file to introduce your project"
	RecommendContributing = "Add CONTRIBUTING.md to help new contributors"
	RecommendMoreDocs     = "Consider adding more documentation files for better project organization"
)

// ProjectAnalysis is the documentation inventory of a project directory.
type ProjectAnalysis struct {
	// ProjectPath is the absolute path that was analysed.
	ProjectPath string

	// ExistingDocs lists standard files present, in StandardDocFiles order.
	ExistingDocs []string

	// MissingDocs lists standard files absent, in StandardDocFiles order.
	MissingDocs []string

	// OtherDocs lists additional Markdown files relative to ProjectPath.
	OtherDocs []string

	// Recommendations lists suggested next steps.
	Recommendations []string

	// CompletionScore is the rounded percentage of standard files present.
	CompletionScore int

	// Summary is a one-line description of the result.
	Summary string
}

// CompletionScore returns round(existing/total*100), or 0 when total is 0.
func CompletionScore(existing, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(existing) / float64(total) * 100))
}
