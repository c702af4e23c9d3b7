package driving

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// AnalysisService inventories the documentation of a project.
type AnalysisService interface {
	// Analyze reports which standard documentation files a project has.
	Analyze(ctx context.Context, projectPath string) (*domain.ProjectAnalysis, error)
}
