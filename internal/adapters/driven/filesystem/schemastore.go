package filesystem

import (
	"context"
	"path/filepath"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure SchemaStore implements the interface.
var _ driven.SchemaStore = (*SchemaStore)(nil)

// SchemaStore reads schema.<kind>.md files from a directory.
type SchemaStore struct {
	dir string
}

// NewSchemaStore creates a schema store rooted at dir.
func NewSchemaStore(dir string) *SchemaStore {
	return &SchemaStore{dir: dir}
}

// Get returns the decoded schema text for kind.
func (s *SchemaStore) Get(ctx context.Context, kind domain.SchemaKind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return readText(s.path(kind), domain.ErrSchemaNotFound)
}

// Exists reports whether the schema file for kind is present.
func (s *SchemaStore) Exists(_ context.Context, kind domain.SchemaKind) bool {
	return isFile(s.path(kind))
}

// Dir returns the schema directory.
func (s *SchemaStore) Dir() string {
	return s.dir
}

func (s *SchemaStore) path(kind domain.SchemaKind) string {
	return filepath.Join(s.dir, kind.FileName())
}
