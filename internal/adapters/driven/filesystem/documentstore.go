package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore reads and writes documents on the local disk.
type DocumentStore struct{}

// NewDocumentStore creates a document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Read returns the decoded document text.
func (s *DocumentStore) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return readText(path, domain.ErrNotFound)
}

// Write stores content at path, creating parent directories.
func (s *DocumentStore) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
