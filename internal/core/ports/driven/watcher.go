package driven

import (
	"context"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch emits a change each time path settles after being modified.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, path string) (<-chan domain.FileChange, error)
}
