package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docschema/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
)

// DBFile is the database file name inside the data directory.
const DBFile = "cache.db"

// Store is a SQLite-based storage for cached templates.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.docschema/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docschema", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// TemplateCache returns the template cache backed by this store.
func (s *Store) TemplateCache() driven.TemplateCache {
	return &templateCache{store: s}
}

// migrate applies pending *.up.sql files in version order.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Template Cache ====================

// templateCache implements driven.TemplateCache.
type templateCache struct {
	store *Store
}

var _ driven.TemplateCache = (*templateCache)(nil)

// Get retrieves the cached template for a category and name.
func (c *templateCache) Get(
	ctx context.Context,
	category domain.TemplateCategory,
	name string,
) (*domain.CachedTemplate, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT id, category, name, content, fetched_at
		FROM template_cache WHERE category = ? AND name = ?
	`, string(category), name)

	var (
		entry     domain.CachedTemplate
		cat       string
		fetchedAt int64
	)
	if err := row.Scan(&entry.ID, &cat, &entry.Name, &entry.Content, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("scanning cached template: %w", err)
	}
	entry.Category = domain.TemplateCategory(cat)
	entry.FetchedAt = time.Unix(0, fetchedAt)

	return &entry, nil
}

// Put stores or replaces the cached template.
func (c *templateCache) Put(ctx context.Context, entry *domain.CachedTemplate) error {
	id := entry.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO template_cache (id, category, name, content, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(category, name) DO UPDATE SET
			content = excluded.content,
			fetched_at = excluded.fetched_at
	`, id, string(entry.Category), entry.Name, entry.Content, entry.FetchedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving cached template: %w", err)
	}
	return nil
}

// Purge removes entries fetched before the cutoff.
func (c *templateCache) Purge(ctx context.Context, fetchedBefore time.Time) (int, error) {
	res, err := c.store.db.ExecContext(ctx,
		"DELETE FROM template_cache WHERE fetched_at < ?", fetchedBefore.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("purging template cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged templates: %w", err)
	}
	return int(n), nil
}
