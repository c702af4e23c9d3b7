package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTemplateCategory_IsValid(t *testing.T) {
	assert.True(t, TemplateCategoryLicense.IsValid())
	assert.True(t, TemplateCategoryGitignore.IsValid())
	assert.False(t, TemplateCategory("schema").IsValid())
}

func TestTemplateSource_IsRemote(t *testing.T) {
	assert.True(t, TemplateSourceGitHub.IsRemote())
	assert.True(t, TemplateSourceCache.IsRemote())
	assert.False(t, TemplateSourceLocal.IsRemote())
	assert.False(t, TemplateSourceLocalAfterFail.IsRemote())
}

func TestCachedTemplate_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fetched  time.Time
		ttl      time.Duration
		expected bool
	}{
		{"fresh", now.Add(-time.Hour), 24 * time.Hour, false},
		{"stale", now.Add(-25 * time.Hour), 24 * time.Hour, true},
		{"no ttl never expires", now.Add(-1000 * time.Hour), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CachedTemplate{FetchedAt: tt.fetched}
			assert.Equal(t, tt.expected, c.IsExpired(tt.ttl, now))
		})
	}
}

func TestLocalTemplateTypes(t *testing.T) {
	assert.True(t, IsLocalLicense("MIT"))
	assert.False(t, IsLocalLicense("BSD-3-Clause"))
	assert.False(t, IsLocalLicense("mit"))

	assert.True(t, IsLocalGitignore("Node.js"))
	assert.False(t, IsLocalGitignore("Node"))
}

func TestDefaultTemplateLists(t *testing.T) {
	assert.Len(t, DefaultLicenseTypes(), 8)
	assert.Len(t, DefaultGitignoreTypes(), 8)
	assert.Contains(t, DefaultGitignoreTypes(), "TypeScript")
}

func TestGeneratedFile_Saved(t *testing.T) {
	assert.False(t, (&GeneratedFile{}).Saved())
	assert.True(t, (&GeneratedFile{OutputPath: "LICENSE"}).Saved())
}
