// Package tui provides the interactive schema browser for docschema.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docschema/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Schema lists schemas and derives templates from them.
	Schema driving.SchemaService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Schema == nil {
		return ErrMissingSchemaService
	}
	return nil
}
