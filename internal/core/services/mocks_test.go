package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// mockSchemaStore serves schema text from a map.
type mockSchemaStore struct {
	schemas map[domain.SchemaKind]string
	dir     string
}

var _ driven.SchemaStore = (*mockSchemaStore)(nil)

func (m *mockSchemaStore) Get(_ context.Context, kind domain.SchemaKind) (string, error) {
	text, ok := m.schemas[kind]
	if !ok {
		return "", domain.ErrSchemaNotFound
	}
	return text, nil
}

func (m *mockSchemaStore) Exists(_ context.Context, kind domain.SchemaKind) bool {
	_, ok := m.schemas[kind]
	return ok
}

func (m *mockSchemaStore) Dir() string {
	return m.dir
}

// mockDocumentStore keeps files in memory.
type mockDocumentStore struct {
	mu       sync.Mutex
	files    map[string]string
	readErr  error
	writeErr error
}

var _ driven.DocumentStore = (*mockDocumentStore)(nil)

func newMockDocumentStore() *mockDocumentStore {
	return &mockDocumentStore{files: make(map[string]string)}
}

func (m *mockDocumentStore) Read(_ context.Context, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", m.readErr
	}
	text, ok := m.files[path]
	if !ok {
		return "", domain.ErrNotFound
	}
	return text, nil
}

func (m *mockDocumentStore) Write(_ context.Context, path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	return nil
}

func (m *mockDocumentStore) set(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
}

type templateKey struct {
	category domain.TemplateCategory
	name     string
}

// mockTemplateStore serves local templates from a map.
type mockTemplateStore struct {
	templates map[templateKey]string
}

var _ driven.TemplateStore = (*mockTemplateStore)(nil)

func (m *mockTemplateStore) Get(_ context.Context, category domain.TemplateCategory, name string) (string, error) {
	text, ok := m.templates[templateKey{category, name}]
	if !ok {
		return "", domain.ErrTemplateNotFound
	}
	return text, nil
}

func (m *mockTemplateStore) List(_ context.Context, category domain.TemplateCategory) ([]string, error) {
	var names []string
	for k := range m.templates {
		if k.category == category {
			names = append(names, k.name)
		}
	}
	return names, nil
}

// mockRemote simulates GitHub.
type mockRemote struct {
	texts      map[templateKey]string
	names      map[domain.TemplateCategory][]string
	fetchErr   error
	listErr    error
	fetchCalls int
}

var _ driven.RemoteTemplateSource = (*mockRemote)(nil)

func (m *mockRemote) Fetch(_ context.Context, category domain.TemplateCategory, name string) (string, error) {
	m.fetchCalls++
	if m.fetchErr != nil {
		return "", m.fetchErr
	}
	text, ok := m.texts[templateKey{category, name}]
	if !ok {
		return "", domain.ErrRemoteUnavailable
	}
	return text, nil
}

func (m *mockRemote) List(_ context.Context, category domain.TemplateCategory) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.names[category], nil
}

// mockCache is a map-backed template cache.
type mockCache struct {
	entries map[templateKey]*domain.CachedTemplate
	getErr  error
	putErr  error
}

var _ driven.TemplateCache = (*mockCache)(nil)

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[templateKey]*domain.CachedTemplate)}
}

func (m *mockCache) Get(
	_ context.Context,
	category domain.TemplateCategory,
	name string,
) (*domain.CachedTemplate, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	entry, ok := m.entries[templateKey{category, name}]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return entry, nil
}

func (m *mockCache) Put(_ context.Context, entry *domain.CachedTemplate) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[templateKey{entry.Category, entry.Name}] = entry
	return nil
}

func (m *mockCache) Purge(_ context.Context, fetchedBefore time.Time) (int, error) {
	n := 0
	for k, e := range m.entries {
		if e.FetchedAt.Before(fetchedBefore) {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}

// mockScanner reports a fixed project layout.
type mockScanner struct {
	existing map[string]bool
	markdown []string
	findErr  error
}

var _ driven.ProjectScanner = (*mockScanner)(nil)

func (m *mockScanner) Exists(_ context.Context, _ string, name string) bool {
	return m.existing[name]
}

func (m *mockScanner) FindMarkdown(_ context.Context, _ string) ([]string, error) {
	return m.markdown, m.findErr
}

// mockWatcher hands out a channel the test drives.
type mockWatcher struct {
	changes chan domain.FileChange
	err     error
}

var _ driven.FileWatcher = (*mockWatcher)(nil)

func (m *mockWatcher) Watch(_ context.Context, _ string) (<-chan domain.FileChange, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.changes, nil
}
