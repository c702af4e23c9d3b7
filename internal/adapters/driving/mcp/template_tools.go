package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// GenerateLicenseInput is the input schema for the generate_license tool.
type GenerateLicenseInput struct {
	LicenseType  string `json:"license_type" jsonschema:"type of license to generate, e.g. MIT, Apache-2.0, GPL-3.0"`
	Author       string `json:"author" jsonschema:"author name for the license"`
	Year         int    `json:"year,omitempty" jsonschema:"copyright year (defaults to current year)"`
	OutputPath   string `json:"output_path,omitempty" jsonschema:"optional output file path"`
	UseGitHubAPI *bool  `json:"use_github_api,omitempty" jsonschema:"whether to fetch from GitHub API (default: true)"`
}

// GenerateGitignoreInput is the input schema for the generate_gitignore tool.
type GenerateGitignoreInput struct {
	GitignoreType string `json:"gitignore_type" jsonschema:"type of gitignore to generate, e.g. Node, Python, Go, Java"`
	OutputPath    string `json:"output_path,omitempty" jsonschema:"optional output file path"`
	UseGitHubAPI  *bool  `json:"use_github_api,omitempty" jsonschema:"whether to fetch from GitHub API (default: true)"`
}

// GeneratedFileOutput is the output schema for the generate_license and
// generate_gitignore tools.
type GeneratedFileOutput struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	Source     string `json:"source"`
	OutputPath string `json:"outputPath,omitempty"`
}

// ListLicenseTemplatesOutput is the output schema for the list_license_templates tool.
type ListLicenseTemplatesOutput struct {
	AvailableLicenseTemplates []string `json:"availableLicenseTemplates"`
	TotalTemplates            int      `json:"totalTemplates"`
	Source                    string   `json:"source"`
	Usage                     string   `json:"usage"`
}

// ListGitignoreTemplatesOutput is the output schema for the list_gitignore_templates tool.
type ListGitignoreTemplatesOutput struct {
	AvailableGitignoreTemplates []string `json:"availableGitignoreTemplates"`
	TotalTemplates              int      `json:"totalTemplates"`
	Source                      string   `json:"source"`
	Usage                       string   `json:"usage"`
}

// TemplateOutput describes one entry of the list_templates catalogue.
type TemplateOutput struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// TemplateCatalogOutput groups catalogue entries by family.
type TemplateCatalogOutput struct {
	Schemas    []TemplateOutput `json:"schemas"`
	Licenses   []TemplateOutput `json:"licenses"`
	Gitignores []TemplateOutput `json:"gitignores"`
}

// TemplateTotalsOutput counts catalogue entries by family.
type TemplateTotalsOutput struct {
	Schemas    int `json:"schemas"`
	Licenses   int `json:"licenses"`
	Gitignores int `json:"gitignores"`
}

// ListTemplatesOutput is the output schema for the list_templates tool.
type ListTemplatesOutput struct {
	AvailableTemplates TemplateCatalogOutput `json:"availableTemplates"`
	TotalTemplates     TemplateTotalsOutput  `json:"totalTemplates"`
	Note               string                `json:"note"`
}

// Messages attached to template listings.
const (
	licenseUsage   = "Use any of these names with the generate_license tool"
	gitignoreUsage = "Use any of these names with the generate_gitignore tool"
	catalogNote    = "License and Gitignore templates are fetched from GitHub API repositories"
)

func (s *Server) registerTemplateTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_license",
		Description: "Generate a LICENSE file, fetched from GitHub with a local fallback",
	}, s.handleGenerateLicense)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_gitignore",
		Description: "Generate a .gitignore file, fetched from GitHub with a local fallback",
	}, s.handleGenerateGitignore)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_license_templates",
		Description: "List license templates available from GitHub",
	}, s.handleListLicenseTemplates)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_gitignore_templates",
		Description: "List .gitignore templates available from GitHub",
	}, s.handleListGitignoreTemplates)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List every schema, license and .gitignore template",
	}, s.handleListTemplates)
}

// handleGenerateLicense handles the generate_license tool invocation.
func (s *Server) handleGenerateLicense(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateLicenseInput,
) (*mcp.CallToolResult, GeneratedFileOutput, error) {
	file, err := s.ports.Template.GenerateLicense(ctx, domain.LicenseRequest{
		Type:       input.LicenseType,
		Author:     input.Author,
		Year:       input.Year,
		OutputPath: input.OutputPath,
		UseAPI:     useAPI(input.UseGitHubAPI),
	})
	if err != nil {
		return nil, GeneratedFileOutput{}, toolError("License generation", err)
	}

	text := file.Content
	if file.Saved() {
		text = fmt.Sprintf("✅ %s license generated and saved to: %s (source: %s)",
			file.Type, file.OutputPath, file.Source)
	}
	return textResult(text), fileOutput(file), nil
}

// handleGenerateGitignore handles the generate_gitignore tool invocation.
func (s *Server) handleGenerateGitignore(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateGitignoreInput,
) (*mcp.CallToolResult, GeneratedFileOutput, error) {
	file, err := s.ports.Template.GenerateGitignore(ctx, domain.GitignoreRequest{
		Type:       input.GitignoreType,
		OutputPath: input.OutputPath,
		UseAPI:     useAPI(input.UseGitHubAPI),
	})
	if err != nil {
		return nil, GeneratedFileOutput{}, toolError("Gitignore generation", err)
	}

	text := file.Content
	if file.Saved() {
		text = fmt.Sprintf("✅ %s .gitignore generated and saved to: %s (source: %s)",
			file.Type, file.OutputPath, file.Source)
	}
	return textResult(text), fileOutput(file), nil
}

// handleListLicenseTemplates handles the list_license_templates tool invocation.
func (s *Server) handleListLicenseTemplates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ListLicenseTemplatesOutput, error) {
	list := s.ports.Template.ListLicenses(ctx)
	return nil, ListLicenseTemplatesOutput{
		AvailableLicenseTemplates: nonNil(list.Names),
		TotalTemplates:            len(list.Names),
		Source:                    string(list.Source),
		Usage:                     licenseUsage,
	}, nil
}

// handleListGitignoreTemplates handles the list_gitignore_templates tool invocation.
func (s *Server) handleListGitignoreTemplates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ListGitignoreTemplatesOutput, error) {
	list := s.ports.Template.ListGitignores(ctx)
	return nil, ListGitignoreTemplatesOutput{
		AvailableGitignoreTemplates: nonNil(list.Names),
		TotalTemplates:              len(list.Names),
		Source:                      string(list.Source),
		Usage:                       gitignoreUsage,
	}, nil
}

// handleListTemplates handles the list_templates tool invocation.
func (s *Server) handleListTemplates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ListTemplatesOutput, error) {
	catalog := s.ports.Template.ListAll(ctx)

	schemas := make([]TemplateOutput, len(catalog.Schemas))
	for i, info := range catalog.Schemas {
		schemas[i] = TemplateOutput{
			Type:        string(info.Kind),
			Category:    "documentation",
			Description: info.Kind.Description(),
		}
	}
	licenses := catalogEntries(catalog.Licenses, "license template")
	gitignores := catalogEntries(catalog.Gitignores, ".gitignore template")

	return nil, ListTemplatesOutput{
		AvailableTemplates: TemplateCatalogOutput{
			Schemas:    schemas,
			Licenses:   licenses,
			Gitignores: gitignores,
		},
		TotalTemplates: TemplateTotalsOutput{
			Schemas:    len(schemas),
			Licenses:   len(licenses),
			Gitignores: len(gitignores),
		},
		Note: catalogNote,
	}, nil
}

// catalogEntries renders a template list as catalogue entries described
// as "<name> <noun> (from GitHub)" or with the fallback source.
func catalogEntries(list domain.TemplateList, noun string) []TemplateOutput {
	origin := "from GitHub"
	if !list.Source.IsRemote() {
		origin = string(list.Source)
	}
	entries := make([]TemplateOutput, len(list.Names))
	for i, name := range list.Names {
		entries[i] = TemplateOutput{
			Type:        name,
			Category:    string(list.Category),
			Description: fmt.Sprintf("%s %s (%s)", name, noun, origin),
		}
	}
	return entries
}

func fileOutput(file *domain.GeneratedFile) GeneratedFileOutput {
	return GeneratedFileOutput{
		Type:       file.Type,
		Content:    file.Content,
		Source:     string(file.Source),
		OutputPath: file.OutputPath,
	}
}

// useAPI defaults an absent use_github_api flag to true.
func useAPI(flag *bool) bool {
	return flag == nil || *flag
}
