package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// TemplateCache stores remote template text between runs.
// Only fetched template text is cached; validation results never are.
type TemplateCache interface {
	// Get returns the cached entry for a template.
	// Returns domain.ErrCacheMiss if no entry exists.
	Get(ctx context.Context, category domain.TemplateCategory, name string) (*domain.CachedTemplate, error)

	// Put stores or replaces the entry for its category and name.
	Put(ctx context.Context, entry *domain.CachedTemplate) error

	// Purge removes entries fetched before the cutoff and returns how many were removed.
	Purge(ctx context.Context, fetchedBefore time.Time) (int, error)
}
