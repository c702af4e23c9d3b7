package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedSchema indicates a schema kind outside the known set.
	ErrUnsupportedSchema = errors.New("unsupported schema type")

	// Storage Errors.

	// ErrSchemaNotFound indicates the schema file for a known kind is missing.
	ErrSchemaNotFound = fmt.Errorf("schema %w", ErrNotFound)

	// ErrTemplateNotFound indicates a local license or gitignore template is missing.
	ErrTemplateNotFound = fmt.Errorf("template %w", ErrNotFound)

	// ErrCacheMiss indicates a cached template is absent or expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrWatchUnavailable indicates no file watcher is configured.
	ErrWatchUnavailable = errors.New("file watching unavailable")

	// Remote Errors.

	// ErrRemoteUnavailable indicates the remote template source could not serve a request.
	ErrRemoteUnavailable = errors.New("remote template source unavailable")
)

// TemplateUnavailableError reports a license or gitignore template that no
// source could provide. It matches ErrTemplateNotFound with errors.Is.
type TemplateUnavailableError struct {
	// Name is the requested template name.
	Name string

	// RemoteErr is the GitHub failure, nil when GitHub was not consulted.
	RemoteErr error
}

func (e *TemplateUnavailableError) Error() string {
	if e.RemoteErr != nil {
		return fmt.Sprintf("Template '%s' not available locally and GitHub API failed", e.Name)
	}
	return fmt.Sprintf("Local template for '%s' not found. Try using GitHub API instead.", e.Name)
}

// Unwrap exposes ErrTemplateNotFound and the remote failure, if any.
func (e *TemplateUnavailableError) Unwrap() []error {
	if e.RemoteErr != nil {
		return []error{ErrTemplateNotFound, e.RemoteErr}
	}
	return []error{ErrTemplateNotFound}
}
