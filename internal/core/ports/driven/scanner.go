package driven

import "context"

// ProjectScanner inspects a project directory for documentation files.
type ProjectScanner interface {
	// Exists reports whether name exists directly under root.
	Exists(ctx context.Context, root, name string) bool

	// FindMarkdown returns Markdown files under root, relative to root and sorted.
	// Vendored and dependency directories are skipped.
	FindMarkdown(ctx context.Context, root string) ([]string, error)
}
