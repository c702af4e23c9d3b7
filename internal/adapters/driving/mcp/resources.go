package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

const (
	// uriScheme is the URI scheme of schema resources.
	uriScheme = "schema://"

	markdownMIME = "text/markdown"
)

// registerResources registers a schema://<kind> resource for every schema kind.
func (s *Server) registerResources() {
	for _, kind := range domain.AllSchemaKinds() {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + string(kind),
			Name:        "schema_" + string(kind),
			Description: kind.Description(),
			MIMEType:    markdownMIME,
		}, s.handleSchemaResource)
	}
}

// handleSchemaResource returns the raw text of a schema.
func (s *Server) handleSchemaResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kind, ok := extractSchemaKind(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text, err := s.ports.Schema.Get(ctx, kind)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("schema resource error: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: markdownMIME,
			Text:     text,
		}},
	}, nil
}

// extractSchemaKind extracts the kind from a URI like schema://readme.
func extractSchemaKind(uri string) (domain.SchemaKind, bool) {
	name, ok := strings.CutPrefix(uri, uriScheme)
	if !ok {
		return "", false
	}
	kind := domain.SchemaKind(name)
	return kind, kind.IsValid()
}
