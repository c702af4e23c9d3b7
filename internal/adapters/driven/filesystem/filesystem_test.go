package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain utf-8", []byte("# Title\n"), "# Title\n"},
		{"utf-8 bom", []byte("\xEF\xBB\xBF# Title"), "# Title"},
		{"utf-16le bom", []byte{0xFF, 0xFE, '#', 0, ' ', 0, 'A', 0}, "# A"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, '#', 0, ' ', 0, 'B'}, "# B"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schema.readme.md"), []byte("\xEF\xBB\xBF# README Schema\n"))
	store := NewSchemaStore(dir)

	t.Run("reads and decodes schema", func(t *testing.T) {
		text, err := store.Get(ctx, domain.SchemaKindReadme)
		require.NoError(t, err)
		assert.Equal(t, "# README Schema\n", text)
	})

	t.Run("missing schema is not found", func(t *testing.T) {
		_, err := store.Get(ctx, domain.SchemaKindAPI)
		assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		assert.True(t, store.Exists(ctx, domain.SchemaKindReadme))
		assert.False(t, store.Exists(ctx, domain.SchemaKindTodo))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Get(cancelled, domain.SchemaKindReadme)
		assert.ErrorIs(t, err, context.Canceled)
	})

	assert.Equal(t, dir, store.Dir())
}

func TestTemplateStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "licenses", "MIT.txt"), []byte("MIT {{year}}"))
	writeFile(t, filepath.Join(dir, "licenses", "Apache-2.0.txt"), []byte("Apache"))
	writeFile(t, filepath.Join(dir, "licenses", "notes.md"), []byte("ignored"))
	writeFile(t, filepath.Join(dir, "gitignore", "Go.gitignore"), []byte("*.test"))
	store := NewTemplateStore(dir)

	t.Run("get license", func(t *testing.T) {
		text, err := store.Get(ctx, domain.TemplateCategoryLicense, "MIT")
		require.NoError(t, err)
		assert.Equal(t, "MIT {{year}}", text)
	})

	t.Run("get gitignore", func(t *testing.T) {
		text, err := store.Get(ctx, domain.TemplateCategoryGitignore, "Go")
		require.NoError(t, err)
		assert.Equal(t, "*.test", text)
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := store.Get(ctx, domain.TemplateCategoryGitignore, "Python")
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		_, err := store.Get(ctx, domain.TemplateCategoryLicense, "../MIT")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := store.Get(ctx, domain.TemplateCategory("font"), "x")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("list filters by extension", func(t *testing.T) {
		names, err := store.List(ctx, domain.TemplateCategoryLicense)
		require.NoError(t, err)
		assert.Equal(t, []string{"Apache-2.0", "MIT"}, names)
	})

	t.Run("list of missing directory is empty", func(t *testing.T) {
		names, err := NewTemplateStore(t.TempDir()).List(ctx, domain.TemplateCategoryGitignore)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestDocumentStore(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()
	path := filepath.Join(t.TempDir(), "docs", "nested", "README.md")

	_, err := store.Read(ctx, path)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Write(ctx, path, "# Hello\n"))

	text, err := store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n", text)
}

func TestScanner(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), []byte("# R"))
	writeFile(t, filepath.Join(root, "docs", "guide.md"), []byte("# G"))
	writeFile(t, filepath.Join(root, "docs", "deep", "notes.md"), []byte("# N"))
	writeFile(t, filepath.Join(root, "docs", "image.png"), []byte{0x89})
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "README.md"), []byte("# P"))
	writeFile(t, filepath.Join(root, "vendor", "lib", "CHANGELOG.md"), []byte("# C"))
	writeFile(t, filepath.Join(root, ".git", "description.md"), []byte("x"))
	scanner := NewScanner()

	t.Run("finds markdown outside skipped dirs", func(t *testing.T) {
		files, err := scanner.FindMarkdown(ctx, root)
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md", "docs/deep/notes.md", "docs/guide.md"}, files)
	})

	t.Run("exists", func(t *testing.T) {
		assert.True(t, scanner.Exists(ctx, root, "README.md"))
		assert.False(t, scanner.Exists(ctx, root, "TODO.md"))
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := scanner.FindMarkdown(ctx, filepath.Join(root, "missing"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("root is a file", func(t *testing.T) {
		_, err := scanner.FindMarkdown(ctx, filepath.Join(root, "README.md"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
