package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure Scanner implements the interface.
var _ driven.ProjectScanner = (*Scanner)(nil)

// MarkdownPattern matches Markdown files at any depth.
const MarkdownPattern = "**/*.md"

// skippedDirs are never searched for documentation.
var skippedDirs = []string{"vendor", "node_modules", ".git"}

// Scanner inspects project directories on disk.
type Scanner struct{}

// NewScanner creates a project scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Exists reports whether name exists directly under root.
func (s *Scanner) Exists(_ context.Context, root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}

// FindMarkdown returns Markdown files under root as slash-separated
// relative paths, sorted.
func (s *Scanner) FindMarkdown(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", root, domain.ErrNotFound)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project %s is not a directory: %w", root, domain.ErrInvalidInput)
	}

	var files []string
	err = doublestar.GlobWalk(os.DirFS(root), MarkdownPattern, func(path string, _ os.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !skipped(path) {
			files = append(files, path)
		}
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	slices.Sort(files)
	return files, nil
}

func skipped(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if slices.Contains(skippedDirs, segment) {
			return true
		}
	}
	return false
}
