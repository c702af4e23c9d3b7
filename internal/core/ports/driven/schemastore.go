package driven

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// SchemaStore provides the raw text of reference schemas.
// Backed by schema.<kind>.md files in the schema directory.
type SchemaStore interface {
	// Get returns the schema text for a kind.
	// Returns domain.ErrSchemaNotFound if the schema file is absent.
	Get(ctx context.Context, kind domain.SchemaKind) (string, error)

	// Exists reports whether a schema file is present for the kind.
	Exists(ctx context.Context, kind domain.SchemaKind) bool

	// Dir returns the schema directory for display.
	Dir() string
}
