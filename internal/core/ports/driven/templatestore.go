package driven

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// TemplateStore provides boilerplate templates shipped with the schemas.
type TemplateStore interface {
	// Get returns the template text.
	// Returns domain.ErrTemplateNotFound if the template file is absent.
	Get(ctx context.Context, category domain.TemplateCategory, name string) (string, error)

	// List returns the template names present on disk, sorted.
	List(ctx context.Context, category domain.TemplateCategory) ([]string, error)
}

// RemoteTemplateSource fetches boilerplate templates from a remote catalogue.
type RemoteTemplateSource interface {
	// Fetch returns the template text for a name.
	// Returns an error wrapping domain.ErrRemoteUnavailable on failure.
	Fetch(ctx context.Context, category domain.TemplateCategory, name string) (string, error)

	// List returns the template names the remote catalogue offers.
	List(ctx context.Context, category domain.TemplateCategory) ([]string, error)
}
