// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docschema/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSchemas is the schema list.
	ViewSchemas ViewType = iota
	// ViewSchema shows one schema as a derived template or raw text.
	ViewSchema
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSchemas:
		return "schemas"
	case ViewSchema:
		return "schema"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SchemasLoaded carries the schema list from the service.
type SchemasLoaded struct {
	Dir     string
	Schemas []domain.SchemaInfo
}

// SchemaSelected is sent when a schema is chosen from the list.
type SchemaSelected struct {
	Kind domain.SchemaKind
}

// SchemaLoaded carries a schema's raw text and derived template.
type SchemaLoaded struct {
	Kind     domain.SchemaKind
	Raw      string
	Template string
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
