package driving

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// TemplateService generates license and gitignore boilerplate.
type TemplateService interface {
	// GenerateLicense produces a license with author and year filled in.
	GenerateLicense(ctx context.Context, req domain.LicenseRequest) (*domain.GeneratedFile, error)

	// GenerateGitignore produces a .gitignore file.
	GenerateGitignore(ctx context.Context, req domain.GitignoreRequest) (*domain.GeneratedFile, error)

	// ListLicenses returns available license template names.
	ListLicenses(ctx context.Context) domain.TemplateList

	// ListGitignores returns available gitignore template names.
	ListGitignores(ctx context.Context) domain.TemplateList

	// ListAll returns schemas, licenses and gitignores together.
	ListAll(ctx context.Context) domain.TemplateCatalog
}
