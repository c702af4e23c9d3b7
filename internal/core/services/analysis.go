package services

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
	"github.com/custodia-labs/docschema/internal/core/ports/driving"
	"github.com/custodia-labs/docschema/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService inventories the documentation files of a project.
type AnalysisService struct {
	scanner driven.ProjectScanner
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(scanner driven.ProjectScanner) *AnalysisService {
	return &AnalysisService{scanner: scanner}
}

// Analyze reports which standard documentation files a project has.
func (s *AnalysisService) Analyze(ctx context.Context, projectPath string) (*domain.ProjectAnalysis, error) {
	if strings.TrimSpace(projectPath) == "" {
		return nil, fmt.Errorf("%w: project path is required", domain.ErrInvalidInput)
	}
	root, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", projectPath, err)
	}

	logger.Section("Project Analysis")
	logger.Debug("Project: %s", root)

	standard := domain.StandardDocFiles()
	analysis := &domain.ProjectAnalysis{
		ProjectPath:     root,
		ExistingDocs:    []string{},
		MissingDocs:     []string{},
		OtherDocs:       []string{},
		Recommendations: []string{},
	}

	for _, name := range standard {
		if s.scanner.Exists(ctx, root, name) {
			analysis.ExistingDocs = append(analysis.ExistingDocs, name)
		} else {
			analysis.MissingDocs = append(analysis.MissingDocs, name)
		}
	}

	markdown, err := s.scanner.FindMarkdown(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	for _, rel := range markdown {
		if !slices.Contains(standard, rel) {
			analysis.OtherDocs = append(analysis.OtherDocs, rel)
		}
	}

	if !slices.Contains(analysis.ExistingDocs, "README.md") {
		analysis.Recommendations = append(analysis.Recommendations, domain.RecommendReadme)
	}
	if !slices.Contains(analysis.ExistingDocs, "CONTRIBUTING.md") {
		analysis.Recommendations = append(analysis.Recommendations, domain.RecommendContributing)
	}
	if len(analysis.ExistingDocs) < domain.MinimumDocFiles {
		analysis.Recommendations = append(analysis.Recommendations, domain.RecommendMoreDocs)
	}

	analysis.CompletionScore = domain.CompletionScore(len(analysis.ExistingDocs), len(standard))
	analysis.Summary = fmt.Sprintf("Found %d/%d standard documentation files", len(analysis.ExistingDocs), len(standard))

	logger.Info("%s, %d other Markdown files", analysis.Summary, len(analysis.OtherDocs))
	return analysis, nil
}
