package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure the stores implement their interfaces.
var (
	_ driven.SchemaStore   = (*SchemaStore)(nil)
	_ driven.TemplateStore = (*TemplateStore)(nil)
)

// SchemaStore serves schema text held in memory.
type SchemaStore struct {
	mu      sync.RWMutex
	schemas map[domain.SchemaKind]string
}

// NewSchemaStore creates a schema store seeded with schemas.
func NewSchemaStore(schemas map[domain.SchemaKind]string) *SchemaStore {
	s := &SchemaStore{schemas: make(map[domain.SchemaKind]string, len(schemas))}
	for k, v := range schemas {
		s.schemas[k] = v
	}
	return s
}

// Put adds or replaces a schema.
func (s *SchemaStore) Put(kind domain.SchemaKind, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[kind] = text
}

// Get returns the schema text for kind.
func (s *SchemaStore) Get(_ context.Context, kind domain.SchemaKind) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.schemas[kind]
	if !ok {
		return "", fmt.Errorf("%s: %w", kind.FileName(), domain.ErrSchemaNotFound)
	}
	return text, nil
}

// Exists reports whether a schema is held for kind.
func (s *SchemaStore) Exists(_ context.Context, kind domain.SchemaKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.schemas[kind]
	return ok
}

// Dir returns a placeholder directory.
func (s *SchemaStore) Dir() string {
	return "memory://schemas"
}

type templateKey struct {
	category domain.TemplateCategory
	name     string
}

// TemplateStore serves license and gitignore templates held in memory.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[templateKey]string
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{templates: make(map[templateKey]string)}
}

// Put adds or replaces a template.
func (s *TemplateStore) Put(category domain.TemplateCategory, name, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[templateKey{category, name}] = text
}

// Get returns the template text.
func (s *TemplateStore) Get(_ context.Context, category domain.TemplateCategory, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.templates[templateKey{category, name}]
	if !ok {
		return "", fmt.Errorf("%s %s: %w", category, name, domain.ErrTemplateNotFound)
	}
	return text, nil
}

// List returns template names for category, sorted.
func (s *TemplateStore) List(_ context.Context, category domain.TemplateCategory) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for k := range s.templates {
		if k.category == category {
			names = append(names, k.name)
		}
	}
	slices.Sort(names)
	return names, nil
}
