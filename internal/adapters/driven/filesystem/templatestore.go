package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateStore = (*TemplateStore)(nil)

// Subdirectories and extensions of the local template layout.
const (
	LicensesDir  = "licenses"
	LicenseExt   = ".txt"
	GitignoreDir = "gitignore"
	GitignoreExt = ".gitignore"
)

// TemplateStore reads license and gitignore templates from disk.
type TemplateStore struct {
	dir string
}

// NewTemplateStore creates a template store rooted at dir.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Get returns the decoded template text.
func (s *TemplateStore) Get(ctx context.Context, category domain.TemplateCategory, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validName(name); err != nil {
		return "", err
	}
	sub, ext, err := layout(category)
	if err != nil {
		return "", err
	}
	return readText(filepath.Join(s.dir, sub, name+ext), domain.ErrTemplateNotFound)
}

// List returns the template names present for category, sorted.
// A missing directory yields an empty list.
func (s *TemplateStore) List(ctx context.Context, category domain.TemplateCategory) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sub, ext, err := layout(category)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.dir, sub))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s templates: %w", category, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), ext); ok && name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

func layout(category domain.TemplateCategory) (dir, ext string, err error) {
	switch category {
	case domain.TemplateCategoryLicense:
		return LicensesDir, LicenseExt, nil
	case domain.TemplateCategoryGitignore:
		return GitignoreDir, GitignoreExt, nil
	default:
		return "", "", fmt.Errorf("template category %q: %w", category, domain.ErrInvalidInput)
	}
}
