package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// ValidateDocumentInput is the input schema for the validate_document tool.
type ValidateDocumentInput struct {
	Content    string `json:"content" jsonschema:"document content to validate"`
	SchemaType string `json:"schema_type" jsonschema:"type of schema to validate against: readme, api, architecture, features, tech_stack, todo, backlog, changelog, contributing or prompt"`
}

// ValidateDocumentOutput is the output schema for the validate_document tool.
type ValidateDocumentOutput struct {
	SchemaType  string   `json:"schemaType"`
	IsValid     bool     `json:"isValid"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	Summary     string   `json:"summary"`
}

// GenerateTemplateInput is the input schema for the generate_template tool.
type GenerateTemplateInput struct {
	SchemaType string `json:"schema_type" jsonschema:"type of schema template to generate"`
	OutputPath string `json:"output_path,omitempty" jsonschema:"optional output file path"`
}

// GenerateTemplateOutput is the output schema for the generate_template tool.
type GenerateTemplateOutput struct {
	SchemaType string `json:"schemaType"`
	Template   string `json:"template"`
	OutputPath string `json:"outputPath,omitempty"`
}

// EmptyInput is the input of tools without parameters.
type EmptyInput struct{}

// ListSchemasOutput is the output schema for the list_schemas tool.
type ListSchemasOutput struct {
	AvailableSchemas []SchemaOutput `json:"availableSchemas"`
	TotalSchemas     int            `json:"totalSchemas"`
	SchemaDirectory  string         `json:"schemaDirectory"`
}

// SchemaOutput describes one schema kind.
type SchemaOutput struct {
	Type        string `json:"type"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
}

// AnalyzeProjectInput is the input schema for the analyze_project_docs tool.
type AnalyzeProjectInput struct {
	ProjectPath string `json:"project_path" jsonschema:"path to project directory to analyze"`
}

// AnalyzeProjectOutput is the output schema for the analyze_project_docs tool.
type AnalyzeProjectOutput struct {
	ProjectPath     string   `json:"projectPath"`
	ExistingDocs    []string `json:"existingDocs"`
	MissingDocs     []string `json:"missingDocs"`
	OtherDocs       []string `json:"otherDocs"`
	Recommendations []string `json:"recommendations"`
	CompletionScore int      `json:"completionScore"`
	Summary         string   `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_document",
		Description: "Validate a document's heading structure against a documentation schema",
	}, s.handleValidateDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_template",
		Description: "Generate a document template from a schema",
	}, s.handleGenerateTemplate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_schemas",
		Description: "List available documentation schemas",
	}, s.handleListSchemas)

	if s.ports.Analysis != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "analyze_project_docs",
			Description: "Analyze which standard documentation files a project has",
		}, s.handleAnalyzeProject)
	}

	if s.ports.Template != nil {
		s.registerTemplateTools()
	}
}

// handleValidateDocument handles the validate_document tool invocation.
func (s *Server) handleValidateDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidateDocumentInput,
) (*mcp.CallToolResult, ValidateDocumentOutput, error) {
	kind, err := domain.ParseSchemaKind(input.SchemaType)
	if err != nil {
		return nil, ValidateDocumentOutput{}, toolError("Validation", err)
	}

	report, err := s.ports.Schema.Validate(ctx, input.Content, kind)
	if err != nil {
		return nil, ValidateDocumentOutput{}, toolError("Validation", err)
	}

	return nil, ValidateDocumentOutput{
		SchemaType:  string(report.SchemaKind),
		IsValid:     report.IsValid,
		Score:       report.Score,
		Issues:      nonNil(report.Issues),
		Suggestions: nonNil(report.Suggestions),
		Summary:     report.Summary,
	}, nil
}

// handleGenerateTemplate handles the generate_template tool invocation.
// The text content is the template itself, or a confirmation when saved.
func (s *Server) handleGenerateTemplate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateTemplateInput,
) (*mcp.CallToolResult, GenerateTemplateOutput, error) {
	kind, err := domain.ParseSchemaKind(input.SchemaType)
	if err != nil {
		return nil, GenerateTemplateOutput{}, toolError("Template generation", err)
	}

	tmpl, err := s.ports.Schema.GenerateTemplate(ctx, kind, input.OutputPath)
	if err != nil {
		return nil, GenerateTemplateOutput{}, toolError("Template generation", err)
	}

	text := tmpl.Content
	if tmpl.OutputPath != "" {
		text = fmt.Sprintf("✅ Template generated and saved to: %s", tmpl.OutputPath)
	}

	return textResult(text), GenerateTemplateOutput{
		SchemaType: string(tmpl.SchemaKind),
		Template:   tmpl.Content,
		OutputPath: tmpl.OutputPath,
	}, nil
}

// handleListSchemas handles the list_schemas tool invocation.
func (s *Server) handleListSchemas(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ListSchemasOutput, error) {
	infos := s.ports.Schema.List(ctx)

	output := ListSchemasOutput{
		AvailableSchemas: make([]SchemaOutput, len(infos)),
		SchemaDirectory:  s.ports.Schema.Dir(),
	}
	for i, info := range infos {
		output.AvailableSchemas[i] = SchemaOutput{
			Type:        string(info.Kind),
			Available:   info.Available,
			Description: info.Description,
		}
		if info.Available {
			output.TotalSchemas++
		}
	}

	return nil, output, nil
}

// handleAnalyzeProject handles the analyze_project_docs tool invocation.
func (s *Server) handleAnalyzeProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeProjectInput,
) (*mcp.CallToolResult, AnalyzeProjectOutput, error) {
	analysis, err := s.ports.Analysis.Analyze(ctx, input.ProjectPath)
	if err != nil {
		return nil, AnalyzeProjectOutput{}, toolError("Analysis", err)
	}

	return nil, AnalyzeProjectOutput{
		ProjectPath:     analysis.ProjectPath,
		ExistingDocs:    nonNil(analysis.ExistingDocs),
		MissingDocs:     nonNil(analysis.MissingDocs),
		OtherDocs:       nonNil(analysis.OtherDocs),
		Recommendations: nonNil(analysis.Recommendations),
		CompletionScore: analysis.CompletionScore,
		Summary:         analysis.Summary,
	}, nil
}

// toolError prefixes err with the failed action, e.g. "Validation error: ...".
func toolError(action string, err error) error {
	return fmt.Errorf("%s error: %w", action, err)
}

// textResult builds a result whose text content is text.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
