package driven

import "context"

// DocumentStore reads documents for validation and writes generated files.
type DocumentStore interface {
	// Read returns the decoded text of a document.
	// Byte-order marks are removed and UTF-16 input is converted to UTF-8.
	Read(ctx context.Context, path string) (string, error)

	// Write stores content at path, creating parent directories as needed.
	Write(ctx context.Context, path, content string) error
}
