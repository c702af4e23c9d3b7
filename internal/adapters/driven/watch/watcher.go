package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
	"github.com/custodia-labs/docschema/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce is how long a file must stay quiet before a change is reported.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches single files for changes.
type Watcher struct {
	debounce time.Duration
	now      func() time.Time
}

// NewWatcher creates a watcher. A zero debounce uses DefaultDebounce.
func NewWatcher(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce, now: time.Now}
}

// Watch emits a change each time path settles after being modified.
// The parent directory is watched so editors that save by renaming a
// temporary file are still seen. The channel closes when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan domain.FileChange, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	changes := make(chan domain.FileChange)
	go w.run(ctx, fsw, target, changes)

	return changes, nil
}

// run is the event loop for one watched file.
func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, target string, out chan<- domain.FileChange) {
	defer close(out)
	defer fsw.Close()

	var (
		mu      sync.Mutex
		pending *domain.FileChange
	)
	fire := make(chan struct{}, 1)
	debouncer := NewDebouncer(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			change := w.handleEvent(event)
			if change == nil {
				continue
			}
			mu.Lock()
			pending = change
			mu.Unlock()
			debouncer.Trigger()

		case <-fire:
			mu.Lock()
			change := pending
			pending = nil
			mu.Unlock()
			if change == nil {
				continue
			}
			select {
			case out <- *change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", target, err)
		}
	}
}

// handleEvent converts an fsnotify event to a file change.
// Returns nil for events that do not alter content.
func (w *Watcher) handleEvent(event fsnotify.Event) *domain.FileChange {
	changeType, ok := opToChangeType(event.Op)
	if !ok {
		return nil
	}
	return &domain.FileChange{
		Path: event.Name,
		Type: changeType,
		At:   w.now(),
	}
}

func opToChangeType(op fsnotify.Op) (domain.ChangeType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return domain.ChangeCreated, true
	case op.Has(fsnotify.Write):
		return domain.ChangeUpdated, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return domain.ChangeDeleted, true
	default:
		return 0, false
	}
}
