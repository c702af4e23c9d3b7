package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
	"github.com/custodia-labs/docschema/internal/core/ports/driving"
	"github.com/custodia-labs/docschema/internal/core/structure"
	"github.com/custodia-labs/docschema/internal/logger"
)

// Ensure SchemaService implements the interface.
var _ driving.SchemaService = (*SchemaService)(nil)

// SchemaService validates documents and derives templates from schemas.
type SchemaService struct {
	schemas   driven.SchemaStore
	documents driven.DocumentStore
	watcher   driven.FileWatcher
}

// NewSchemaService creates a new schema service.
func NewSchemaService(schemas driven.SchemaStore, documents driven.DocumentStore) *SchemaService {
	return &SchemaService{
		schemas:   schemas,
		documents: documents,
	}
}

// SetFileWatcher enables WatchFile.
func (s *SchemaService) SetFileWatcher(w driven.FileWatcher) {
	s.watcher = w
}

// List returns every schema kind with its availability.
func (s *SchemaService) List(ctx context.Context) []domain.SchemaInfo {
	return schemaInfos(ctx, s.schemas)
}

// Dir returns the schema directory.
func (s *SchemaService) Dir() string {
	return s.schemas.Dir()
}

// Get returns the raw schema text for a kind.
func (s *SchemaService) Get(ctx context.Context, kind domain.SchemaKind) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedSchema, kind)
	}
	text, err := s.schemas.Get(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("load %s schema: %w", kind, err)
	}
	return text, nil
}

// Validate scores document content against the schema for kind.
func (s *SchemaService) Validate(
	ctx context.Context,
	content string,
	kind domain.SchemaKind,
) (*domain.ValidationReport, error) {
	logger.Section("Validation")

	schemaText, err := s.Get(ctx, kind)
	if err != nil {
		return nil, err
	}

	result := structure.Validate(content, schemaText)
	logger.Debug("Schema: %s, score: %d, issues: %d", kind, result.Score, len(result.Issues))

	return domain.NewValidationReport(kind, result), nil
}

// ValidateFile reads a document from disk and validates it.
func (s *SchemaService) ValidateFile(
	ctx context.Context,
	path string,
	kind domain.SchemaKind,
) (*domain.ValidationReport, error) {
	content, err := s.documents.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	logger.Debug("Read %s (%d bytes)", path, len(content))
	return s.Validate(ctx, content, kind)
}

// WatchFile validates path once, then again after every change until ctx is cancelled.
func (s *SchemaService) WatchFile(
	ctx context.Context,
	path string,
	kind domain.SchemaKind,
) (<-chan domain.WatchResult, error) {
	if s.watcher == nil {
		return nil, domain.ErrWatchUnavailable
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSchema, kind)
	}

	changes, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	results := make(chan domain.WatchResult, 1)
	go func() {
		defer close(results)

		if !s.emit(ctx, results, s.revalidate(ctx, domain.FileChange{Path: path}, kind)) {
			return
		}
		for change := range changes {
			if !s.emit(ctx, results, s.revalidate(ctx, change, kind)) {
				return
			}
		}
	}()

	return results, nil
}

func (s *SchemaService) revalidate(
	ctx context.Context,
	change domain.FileChange,
	kind domain.SchemaKind,
) domain.WatchResult {
	if change.Type == domain.ChangeDeleted {
		logger.Warn("Watched document removed: %s", change.Path)
		return domain.WatchResult{Change: change, Err: fmt.Errorf("%s: %w", change.Path, domain.ErrNotFound)}
	}
	report, err := s.ValidateFile(ctx, change.Path, kind)
	return domain.WatchResult{Change: change, Report: report, Err: err}
}

func (s *SchemaService) emit(ctx context.Context, out chan<- domain.WatchResult, r domain.WatchResult) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// GenerateTemplate derives a skeleton document for kind.
func (s *SchemaService) GenerateTemplate(
	ctx context.Context,
	kind domain.SchemaKind,
	outputPath string,
) (*domain.GeneratedTemplate, error) {
	schemaText, err := s.Get(ctx, kind)
	if err != nil {
		return nil, err
	}

	tpl := &domain.GeneratedTemplate{
		SchemaKind: kind,
		Content:    structure.DeriveTemplate(kind.String(), schemaText),
	}

	if outputPath != "" {
		if err := s.documents.Write(ctx, outputPath, tpl.Content); err != nil {
			return nil, fmt.Errorf("write template: %w", err)
		}
		tpl.OutputPath = outputPath
		logger.Info("Template for %s written to %s", kind, outputPath)
	}

	return tpl, nil
}

// schemaInfos reports availability for every schema kind.
func schemaInfos(ctx context.Context, store driven.SchemaStore) []domain.SchemaInfo {
	kinds := domain.AllSchemaKinds()
	infos := make([]domain.SchemaInfo, len(kinds))
	for i, k := range kinds {
		info := domain.SchemaInfo{Kind: k, Description: domain.NotAvailableDescription}
		if store.Exists(ctx, k) {
			info.Available = true
			info.Description = k.Description()
		}
		infos[i] = info
	}
	return infos
}
