package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/custodia-labs/docschema/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/services"
)

const readmeSchema = `# README Schema

## Structure Specification

### 1. Installation
### 2. Usage
### License (optional)

## Notes
`

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	analysis *domain.ProjectAnalysis
	err      error
	path     string
}

func (m *mockAnalysisService) Analyze(_ context.Context, projectPath string) (*domain.ProjectAnalysis, error) {
	m.path = projectPath
	return m.analysis, m.err
}

// mockRemote is a mock implementation of driven.RemoteTemplateSource.
type mockRemote struct {
	names []string
	text  string
	err   error
}

func (m *mockRemote) Fetch(_ context.Context, _ domain.TemplateCategory, _ string) (string, error) {
	return m.text, m.err
}

func (m *mockRemote) List(_ context.Context, _ domain.TemplateCategory) ([]string, error) {
	return m.names, m.err
}

// testEnv wires real services over in-memory stores.
type testEnv struct {
	server    *Server
	documents *memory.DocumentStore
	templates *services.TemplateService
	analysis  *mockAnalysisService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	schemas := memory.NewSchemaStore(map[domain.SchemaKind]string{
		domain.SchemaKindReadme:   readmeSchema,
		domain.SchemaKindFeatures: "# Features\n",
	})
	documents := memory.NewDocumentStore()
	local := memory.NewTemplateStore()
	local.Put(domain.TemplateCategoryLicense, "MIT", "MIT License\n\nCopyright (c) {{year}} {{author}}\n")
	local.Put(domain.TemplateCategoryGitignore, "Go", "*.test\n")

	templates := services.NewTemplateService(local, documents, schemas)
	analysis := &mockAnalysisService{}

	server, err := NewServer(&Ports{
		Schema:   services.NewSchemaService(schemas, documents),
		Template: templates,
		Analysis: analysis,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	return &testEnv{server: server, documents: documents, templates: templates, analysis: analysis}
}

// longReadme carries every required heading of readmeSchema and enough text.
func longReadme() string {
	return "# README Schema\n\n## Structure Specification\n\n### 1. Installation\n\nRun the installer.\n\n" +
		"### 2. Usage\n\n" + strings.Repeat("Describe how the tool is used. ", 10) + "\n\n## Notes\n"
}
