package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractSchemaKind(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected domain.SchemaKind
		ok       bool
	}{
		{"readme", "schema://readme", domain.SchemaKindReadme, true},
		{"tech stack", "schema://tech_stack", domain.SchemaKindTechStack, true},
		{"unknown kind", "schema://novel", "novel", false},
		{"wrong scheme", "file://readme", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := extractSchemaKind(tt.uri)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestServer_handleSchemaResource(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("returns schema markdown", func(t *testing.T) {
		result, err := env.server.handleSchemaResource(ctx, makeReadResourceRequest("schema://readme"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "schema://readme", result.Contents[0].URI)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Equal(t, readmeSchema, result.Contents[0].Text)
	})

	t.Run("missing schema file", func(t *testing.T) {
		_, err := env.server.handleSchemaResource(ctx, makeReadResourceRequest("schema://api"))
		require.Error(t, err)
	})

	t.Run("invalid URI", func(t *testing.T) {
		_, err := env.server.handleSchemaResource(ctx, makeReadResourceRequest("schema://novel"))
		require.Error(t, err)
	})
}
