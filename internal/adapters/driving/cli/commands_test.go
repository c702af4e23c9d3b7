package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

func TestValidateCmd_ValidDocument(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, env.documents.Write(context.Background(), "README.md", validReadme))

	out, err := executeCommand("validate", "README.md", "--schema", "readme")

	require.NoError(t, err)
	assert.Contains(t, out, "✅ Document structure is valid")
	assert.Contains(t, out, "Score: 100/100")
}

func TestValidateCmd_InvalidDocument(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, env.documents.Write(context.Background(), "README.md", "# Hello\n"))

	out, err := executeCommand("validate", "README.md", "-s", "readme")

	require.ErrorIs(t, err, ErrDocumentInvalid)
	assert.Contains(t, out, "❌ Document has")
	assert.Contains(t, out, "Missing required section: Notes")
	assert.Contains(t, out, "Suggestions:")
}

func TestValidateCmd_JSON(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, env.documents.Write(context.Background(), "README.md", validReadme))

	out, err := executeCommand("validate", "README.md", "-s", "readme", "--format", "json")
	require.NoError(t, err)

	var report reportView
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "readme", report.SchemaType)
	assert.True(t, report.IsValid)
	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Issues)
}

func TestValidateCmd_YAML(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, env.documents.Write(context.Background(), "README.md", "# Hello\n"))

	out, err := executeCommand("validate", "README.md", "-s", "readme", "-f", "yaml")
	require.ErrorIs(t, err, ErrDocumentInvalid)

	var report reportView
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Issues)
}

func TestValidateCmd_Errors(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, env.documents.Write(context.Background(), "README.md", validReadme))

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown schema",
			args:    []string{"validate", "README.md", "-s", "novel"},
			wantErr: domain.ErrUnsupportedSchema,
		},
		{
			name:    "missing file",
			args:    []string{"validate", "MISSING.md", "-s", "readme"},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "schema not on disk",
			args:    []string{"validate", "README.md", "-s", "api"},
			wantErr: domain.ErrSchemaNotFound,
		},
		{
			name:    "bad format",
			args:    []string{"validate", "README.md", "-s", "readme", "-f", "xml"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "watch without watcher",
			args:    []string{"validate", "README.md", "-s", "readme", "--watch"},
			wantErr: domain.ErrWatchUnavailable,
		},
		{
			name:    "schema flag required",
			args:    []string{"validate", "README.md"},
			wantMsg: `required flag(s) "schema" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestTemplateCmd_Prints(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("template", "readme")

	require.NoError(t, err)
	assert.Contains(t, out, "# Readme\n")
	assert.Contains(t, out, "## Installation")
}

func TestTemplateCmd_WritesFile(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("template", "readme", "-o", "docs/README.md")

	require.NoError(t, err)
	assert.Contains(t, out, "✅ readme template saved to: docs/README.md")
	content, err := env.documents.Read(context.Background(), "docs/README.md")
	require.NoError(t, err)
	assert.Contains(t, content, "## Usage")
}

func TestTemplateCmd_UnknownKind(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand("template", "poem")

	assert.ErrorIs(t, err, domain.ErrUnsupportedSchema)
}

func TestSchemasCmd_Text(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("schemas")

	require.NoError(t, err)
	assert.Contains(t, out, "memory://schemas")
	assert.Contains(t, out, "✓ readme")
	assert.Contains(t, out, "✗ api")
	assert.Contains(t, out, "Schema for tech stack documentation")
	assert.Contains(t, out, "1 of 10 schemas available")
}

func TestSchemasCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("schemas", "--format", "json")
	require.NoError(t, err)

	var list schemaListView
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, "memory://schemas", list.Dir)
	require.Len(t, list.Schemas, 10)
	assert.Equal(t, "readme", list.Schemas[0].Type)
	assert.True(t, list.Schemas[0].Available)
	assert.Equal(t, domain.NotAvailableDescription, list.Schemas[1].Description)
}

func TestAnalyzeCmd(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("analyze", env.projectDir)

	require.NoError(t, err)
	assert.Contains(t, out, "Found 2/7 standard documentation files")
	assert.Contains(t, out, "Completion: 29%")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, domain.RecommendContributing)
	assert.Contains(t, out, domain.RecommendMoreDocs)
}

func TestAnalyzeCmd_YAML(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("analyze", env.projectDir, "-f", "yaml")
	require.NoError(t, err)

	var analysis analysisView
	require.NoError(t, yaml.Unmarshal([]byte(out), &analysis))
	assert.ElementsMatch(t, []string{"README.md", "CHANGELOG.md"}, analysis.ExistingDocs)
	assert.Len(t, analysis.MissingDocs, 5)
	assert.Equal(t, 29, analysis.CompletionScore)
}

func TestAnalyzeCmd_MissingDirectory(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand("analyze", env.projectDir+"/nope")

	assert.Error(t, err)
}

func TestLicenseCmd_Local(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("license", "MIT", "--author", "Jane Doe", "--year", "2024", "--local")

	require.NoError(t, err)
	assert.Contains(t, out, "Copyright (c) 2024 Jane Doe")
}

func TestLicenseCmd_SavesFile(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("license", "MIT", "--author", "Jane Doe", "--year", "2024", "-o", "LICENSE")

	require.NoError(t, err)
	assert.Contains(t, out, "✅ MIT license generated and saved to: LICENSE (source: local template)")
	content, err := env.documents.Read(context.Background(), "LICENSE")
	require.NoError(t, err)
	assert.Contains(t, content, "Jane Doe")
}

func TestLicenseCmd_Errors(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand("license", "MIT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "author" not set`)

	_, err = executeCommand("license", "WTFPL", "--author", "Jane")
	var unavailable *domain.TemplateUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "Local template for 'WTFPL' not found. Try using GitHub API instead.", err.Error())
}

func TestGitignoreCmd(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("gitignore", "Go")
	require.NoError(t, err)
	assert.Contains(t, out, "vendor/")

	out, err = executeCommand("gitignore", "Go", "-o", ".gitignore", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Go .gitignore generated and saved to: .gitignore (source: local template)")
	content, err := env.documents.Read(context.Background(), ".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "*.test\nvendor/\n", content)
}

func TestGitignoreCmd_Unknown(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand("gitignore", "Haskell")

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestTemplatesListCmd(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("templates", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Schemas (1)")
	assert.Contains(t, out, "Licenses (8, from built-in list)")
	assert.Contains(t, out, "BSD-3-Clause")
	assert.Contains(t, out, "Gitignores (8, from built-in list)")
	assert.Contains(t, out, "TypeScript")
}

func TestTemplatesListCmd_Category(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("templates", "list", "--category", "license", "--format", "json")
	require.NoError(t, err)

	var list templateListView
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, "license", list.Category)
	assert.Equal(t, "built-in list", list.Source)
	assert.Equal(t, domain.DefaultLicenseTypes(), list.Templates)

	_, err = executeCommand("templates", "list", "-c", "fonts")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTemplatesListCmd_CatalogYAML(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand("templates", "list", "-f", "yaml")
	require.NoError(t, err)

	var catalog catalogView
	require.NoError(t, yaml.Unmarshal([]byte(out), &catalog))
	assert.Len(t, catalog.Schemas, 10)
	assert.Equal(t, domain.DefaultGitignoreTypes(), catalog.Gitignores.Templates)
}

func TestCommands_ServiceNotConfigured(t *testing.T) {
	SetServices(nil)
	orig := bootstrap
	bootstrap = nil
	defer func() { bootstrap = orig }()

	tests := [][]string{
		{"validate", "README.md", "-s", "readme"},
		{"template", "readme"},
		{"schemas"},
		{"analyze"},
		{"license", "MIT", "--author", "x"},
		{"gitignore", "Go"},
		{"templates", "list"},
		{"settings", "show"},
		{"browse"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand(args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "not configured")
		})
	}
}
