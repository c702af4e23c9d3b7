// Package mcp provides an MCP (Model Context Protocol) server adapter for docschema.
// It lets AI assistants validate documents against schemas, derive templates
// and generate license and .gitignore boilerplate.
package mcp

import "errors"

// ErrMissingSchemaService is returned when the schema service is not provided.
var ErrMissingSchemaService = errors.New("mcp: schema service is required")
