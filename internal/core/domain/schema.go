package domain

import (
	"fmt"
	"strings"
)

// SchemaKind identifies a documentation kind that has a reference schema.
type SchemaKind string

// Available schema kinds.
const (
	SchemaKindReadme       SchemaKind = "readme"
	SchemaKindAPI          SchemaKind = "api"
	SchemaKindArchitecture SchemaKind = "architecture"
	SchemaKindFeatures     SchemaKind = "features"
	SchemaKindTechStack    SchemaKind = "tech_stack"
	SchemaKindTodo         SchemaKind = "todo"
	SchemaKindBacklog      SchemaKind = "backlog"
	SchemaKindChangelog    SchemaKind = "changelog"
	SchemaKindContributing SchemaKind = "contributing"
	SchemaKindPrompt       SchemaKind = "prompt"
)

// AllSchemaKinds returns every schema kind in listing order.
func AllSchemaKinds() []SchemaKind {
	return []SchemaKind{
		SchemaKindReadme,
		SchemaKindAPI,
		SchemaKindArchitecture,
		SchemaKindFeatures,
		SchemaKindTechStack,
		SchemaKindTodo,
		SchemaKindBacklog,
		SchemaKindChangelog,
		SchemaKindContributing,
		SchemaKindPrompt,
	}
}

// ParseSchemaKind converts user input into a SchemaKind.
// Matching is case-insensitive and tolerates surrounding whitespace.
func ParseSchemaKind(s string) (SchemaKind, error) {
	k := SchemaKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSchema, s)
	}
	return k, nil
}

// IsValid returns true if the schema kind is recognised.
func (k SchemaKind) IsValid() bool {
	switch k {
	case SchemaKindReadme, SchemaKindAPI, SchemaKindArchitecture, SchemaKindFeatures,
		SchemaKindTechStack, SchemaKindTodo, SchemaKindBacklog, SchemaKindChangelog,
		SchemaKindContributing, SchemaKindPrompt:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SchemaKind) String() string {
	return string(k)
}

// FileName returns the schema file name, e.g. "schema.tech_stack.md".
func (k SchemaKind) FileName() string {
	return "schema." + string(k) + ".md"
}

// Description returns the catalogue description of the schema.
func (k SchemaKind) Description() string {
	return "Schema for " + strings.Replace(string(k), "_", " ", 1) + " documentation"
}

// SchemaInfo describes a schema kind and whether its file is present.
type SchemaInfo struct {
	// Kind is the schema kind.
	Kind SchemaKind

	// Available reports whether the schema file exists in the schema directory.
	Available bool

	// Description is "Schema for <kind> documentation" or "Not available".
	Description string
}

// NotAvailableDescription is shown for schema kinds without a schema file.
const NotAvailableDescription = "Not available"
