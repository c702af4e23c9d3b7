package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure TemplateCache implements the interface.
var _ driven.TemplateCache = (*TemplateCache)(nil)

// TemplateCache is an in-memory implementation of driven.TemplateCache.
type TemplateCache struct {
	mu      sync.RWMutex
	entries map[templateKey]domain.CachedTemplate
}

// NewTemplateCache creates a new in-memory template cache.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{entries: make(map[templateKey]domain.CachedTemplate)}
}

// Get returns the cached entry or domain.ErrCacheMiss.
func (c *TemplateCache) Get(
	_ context.Context,
	category domain.TemplateCategory,
	name string,
) (*domain.CachedTemplate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[templateKey{category, name}]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return &entry, nil
}

// Put stores or replaces an entry. A missing ID is generated.
func (c *TemplateCache) Put(_ context.Context, entry *domain.CachedTemplate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := *entry
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	c.entries[templateKey{entry.Category, entry.Name}] = stored
	return nil
}

// Purge removes entries fetched before the cutoff.
func (c *TemplateCache) Purge(_ context.Context, fetchedBefore time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k, e := range c.entries {
		if e.FetchedAt.Before(fetchedBefore) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed, nil
}
