package mcp

import (
	"github.com/custodia-labs/docschema/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Schema validates documents and derives templates.
	Schema driving.SchemaService

	// Template generates license and gitignore files.
	Template driving.TemplateService

	// Analysis inventories project documentation.
	Analysis driving.AnalysisService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Schema == nil {
		return ErrMissingSchemaService
	}
	// Template and Analysis tools are only registered when their ports are set.
	return nil
}
