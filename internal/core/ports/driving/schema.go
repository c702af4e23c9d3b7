package driving

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// SchemaService validates documents against schemas and derives templates.
type SchemaService interface {
	// List returns every schema kind with its availability.
	List(ctx context.Context) []domain.SchemaInfo

	// Dir returns the schema directory.
	Dir() string

	// Get returns the raw schema text for a kind.
	Get(ctx context.Context, kind domain.SchemaKind) (string, error)

	// Validate scores document content against the schema for kind.
	Validate(ctx context.Context, content string, kind domain.SchemaKind) (*domain.ValidationReport, error)

	// ValidateFile reads a document from disk and validates it.
	ValidateFile(ctx context.Context, path string, kind domain.SchemaKind) (*domain.ValidationReport, error)

	// WatchFile validates path once, then again after every change until ctx is cancelled.
	// Returns domain.ErrWatchUnavailable if no file watcher is configured.
	WatchFile(ctx context.Context, path string, kind domain.SchemaKind) (<-chan domain.WatchResult, error)

	// GenerateTemplate derives a skeleton document for kind.
	// When outputPath is set the template is also written there.
	GenerateTemplate(ctx context.Context, kind domain.SchemaKind, outputPath string) (*domain.GeneratedTemplate, error)
}
