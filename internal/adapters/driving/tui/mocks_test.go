package tui

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// mockSchemaService implements driving.SchemaService for TUI tests.
type mockSchemaService struct {
	schemas  map[domain.SchemaKind]string
	template string
	err      error
}

func (m *mockSchemaService) List(_ context.Context) []domain.SchemaInfo {
	infos := make([]domain.SchemaInfo, 0, len(domain.AllSchemaKinds()))
	for _, k := range domain.AllSchemaKinds() {
		_, ok := m.schemas[k]
		desc := domain.NotAvailableDescription
		if ok {
			desc = k.Description()
		}
		infos = append(infos, domain.SchemaInfo{Kind: k, Available: ok, Description: desc})
	}
	return infos
}

func (m *mockSchemaService) Dir() string {
	return "/schemas"
}

func (m *mockSchemaService) Get(_ context.Context, kind domain.SchemaKind) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	text, ok := m.schemas[kind]
	if !ok {
		return "", domain.ErrSchemaNotFound
	}
	return text, nil
}

func (m *mockSchemaService) Validate(
	_ context.Context, _ string, kind domain.SchemaKind,
) (*domain.ValidationReport, error) {
	return domain.NewValidationReport(kind, domain.ValidationResult{IsValid: true, Score: 100}), nil
}

func (m *mockSchemaService) ValidateFile(
	ctx context.Context, _ string, kind domain.SchemaKind,
) (*domain.ValidationReport, error) {
	return m.Validate(ctx, "", kind)
}

func (m *mockSchemaService) WatchFile(
	_ context.Context, _ string, _ domain.SchemaKind,
) (<-chan domain.WatchResult, error) {
	return nil, domain.ErrWatchUnavailable
}

func (m *mockSchemaService) GenerateTemplate(
	_ context.Context, kind domain.SchemaKind, _ string,
) (*domain.GeneratedTemplate, error) {
	return &domain.GeneratedTemplate{SchemaKind: kind, Content: m.template}, nil
}
