package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/structure"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_handleValidateDocument(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("valid document", func(t *testing.T) {
		_, output, err := env.server.handleValidateDocument(ctx, nil, ValidateDocumentInput{
			Content:    longReadme(),
			SchemaType: "readme",
		})

		require.NoError(t, err)
		assert.Equal(t, "readme", output.SchemaType)
		assert.True(t, output.IsValid)
		assert.Equal(t, 100, output.Score)
		assert.Empty(t, output.Issues)
		assert.NotNil(t, output.Issues)
		assert.NotNil(t, output.Suggestions)
		assert.Equal(t, "✅ Document structure is valid", output.Summary)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, output, err := env.server.handleValidateDocument(ctx, nil, ValidateDocumentInput{
			Content:    "# Notes",
			SchemaType: "readme",
		})

		require.NoError(t, err)
		assert.False(t, output.IsValid)
		assert.Contains(t, output.Issues, "Missing required section: 1. Installation")
		assert.Contains(t, output.Issues, "Document appears to be too short")
		assert.Equal(t, []string{"Consider adding more detailed content to each section"}, output.Suggestions)
		assert.Contains(t, output.Summary, "❌ Document has")
	})

	t.Run("unknown schema type", func(t *testing.T) {
		_, _, err := env.server.handleValidateDocument(ctx, nil, ValidateDocumentInput{
			Content:    "# X",
			SchemaType: "novel",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedSchema)
		assert.Contains(t, err.Error(), "Validation error: ")
	})

	t.Run("schema file missing", func(t *testing.T) {
		_, _, err := env.server.handleValidateDocument(ctx, nil, ValidateDocumentInput{
			Content:    "# X",
			SchemaType: "api",
		})

		assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
	})
}

func TestServer_handleGenerateTemplate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	want := structure.DeriveTemplate("readme", readmeSchema)

	t.Run("returns template text", func(t *testing.T) {
		result, output, err := env.server.handleGenerateTemplate(ctx, nil, GenerateTemplateInput{SchemaType: "readme"})

		require.NoError(t, err)
		assert.Equal(t, want, resultText(t, result))
		assert.Equal(t, want, output.Template)
		assert.Empty(t, output.OutputPath)
	})

	t.Run("saves to output path", func(t *testing.T) {
		result, output, err := env.server.handleGenerateTemplate(ctx, nil, GenerateTemplateInput{
			SchemaType: "readme",
			OutputPath: "docs/README.md",
		})

		require.NoError(t, err)
		assert.Equal(t, "✅ Template generated and saved to: docs/README.md", resultText(t, result))
		assert.Equal(t, "docs/README.md", output.OutputPath)

		saved, err := env.documents.Read(ctx, "docs/README.md")
		require.NoError(t, err)
		assert.Equal(t, want, saved)
	})

	t.Run("unknown schema type", func(t *testing.T) {
		_, _, err := env.server.handleGenerateTemplate(ctx, nil, GenerateTemplateInput{SchemaType: "novel"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Template generation error: ")
	})
}

func TestServer_handleListSchemas(t *testing.T) {
	env := newTestEnv(t)

	_, output, err := env.server.handleListSchemas(context.Background(), nil, EmptyInput{})

	require.NoError(t, err)
	assert.Len(t, output.AvailableSchemas, len(domain.AllSchemaKinds()))
	assert.Equal(t, 2, output.TotalSchemas)
	assert.Equal(t, "memory://schemas", output.SchemaDirectory)
	assert.Equal(t, SchemaOutput{
		Type:        "readme",
		Available:   true,
		Description: "Schema for readme documentation",
	}, output.AvailableSchemas[0])
	assert.Equal(t, SchemaOutput{
		Type:        "api",
		Available:   false,
		Description: domain.NotAvailableDescription,
	}, output.AvailableSchemas[1])
}

func TestServer_handleAnalyzeProject(t *testing.T) {
	ctx := context.Background()

	t.Run("returns analysis", func(t *testing.T) {
		env := newTestEnv(t)
		env.analysis.analysis = &domain.ProjectAnalysis{
			ProjectPath:     "/work/app",
			ExistingDocs:    []string{"README.md"},
			MissingDocs:     []string{"TODO.md"},
			Recommendations: []string{domain.RecommendContributing},
			CompletionScore: 14,
			Summary:         "Found 1/7 standard documentation files",
		}

		_, output, err := env.server.handleAnalyzeProject(ctx, nil, AnalyzeProjectInput{ProjectPath: "app"})

		require.NoError(t, err)
		assert.Equal(t, "app", env.analysis.path)
		assert.Equal(t, "/work/app", output.ProjectPath)
		assert.Equal(t, []string{"README.md"}, output.ExistingDocs)
		assert.Equal(t, []string{}, output.OtherDocs)
		assert.Equal(t, 14, output.CompletionScore)
		assert.Equal(t, "Found 1/7 standard documentation files", output.Summary)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.analysis.err = errors.New("scan failed")

		_, _, err := env.server.handleAnalyzeProject(ctx, nil, AnalyzeProjectInput{ProjectPath: "app"})

		require.Error(t, err)
		assert.Equal(t, "Analysis error: scan failed", err.Error())
	})
}
