package domain

import (
	"slices"
	"time"
)

// TemplateCategory distinguishes the boilerplate families served by the template service.
type TemplateCategory string

// Available template categories.
const (
	// TemplateCategoryLicense is a LICENSE file template.
	TemplateCategoryLicense TemplateCategory = "license"

	// TemplateCategoryGitignore is a .gitignore template.
	TemplateCategoryGitignore TemplateCategory = "gitignore"
)

// IsValid returns true if the category is recognised.
func (c TemplateCategory) IsValid() bool {
	return c == TemplateCategoryLicense || c == TemplateCategoryGitignore
}

// String returns the string representation.
func (c TemplateCategory) String() string {
	return string(c)
}

// TemplateSource records where generated boilerplate text came from.
type TemplateSource string

// Template sources, rendered verbatim in tool output.
const (
	TemplateSourceGitHub         TemplateSource = "GitHub API"
	TemplateSourceCache          TemplateSource = "cache"
	TemplateSourceLocal          TemplateSource = "local template"
	TemplateSourceLocalAfterFail TemplateSource = "local template (GitHub API failed)"
	TemplateSourceFallbackList   TemplateSource = "built-in list"
)

// String returns the string representation.
func (s TemplateSource) String() string {
	return string(s)
}

// IsRemote returns true if the text was served by GitHub, directly or via cache.
func (s TemplateSource) IsRemote() bool {
	return s == TemplateSourceGitHub || s == TemplateSourceCache
}

// LicenseRequest describes a license to generate.
type LicenseRequest struct {
	// Type is the license template name, e.g. "MIT".
	Type string

	// Author replaces the copyright-holder placeholders.
	Author string

	// Year replaces the year placeholders. Zero means the current year.
	Year int

	// OutputPath, when set, is where the license is written.
	OutputPath string

	// UseAPI fetches from GitHub first and falls back to local templates.
	UseAPI bool
}

// GitignoreRequest describes a .gitignore to generate.
type GitignoreRequest struct {
	// Type is the gitignore template name, e.g. "Go".
	Type string

	// OutputPath, when set, is where the file is written.
	OutputPath string

	// UseAPI fetches from GitHub first and falls back to local templates.
	UseAPI bool
}

// GeneratedFile is boilerplate text produced by the template service.
type GeneratedFile struct {
	Category   TemplateCategory
	Type       string
	Content    string
	Source     TemplateSource
	OutputPath string
}

// Saved returns true if the content was written to disk.
func (f *GeneratedFile) Saved() bool {
	return f.OutputPath != ""
}

// TemplateList is a list of template names with its provenance.
type TemplateList struct {
	Category TemplateCategory
	Names    []string
	Source   TemplateSource
}

// TemplateCatalog aggregates every template the service can produce.
type TemplateCatalog struct {
	Schemas    []SchemaInfo
	Licenses   TemplateList
	Gitignores TemplateList
}

// CachedTemplate is remote template text held in the template cache.
type CachedTemplate struct {
	// ID uniquely identifies the cache entry.
	ID string

	// Category is the template family.
	Category TemplateCategory

	// Name is the template name, e.g. "MIT" or "Go".
	Name string

	// Content is the raw template text as fetched.
	Content string

	// FetchedAt is when the text was fetched from GitHub.
	FetchedAt time.Time
}

// IsExpired reports whether the entry is older than ttl at now.
// A non-positive ttl never expires.
func (c CachedTemplate) IsExpired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(c.FetchedAt) > ttl
}

// LocalLicenseTypes returns the license templates shipped in the templates directory.
func LocalLicenseTypes() []string {
	return []string{"MIT", "Apache-2.0", "GPL-3.0"}
}

// LocalGitignoreTypes returns the gitignore templates shipped in the templates directory.
func LocalGitignoreTypes() []string {
	return []string{"Node.js", "Python", "Go"}
}

// DefaultLicenseTypes is the license list used when GitHub cannot be reached.
func DefaultLicenseTypes() []string {
	return []string{
		"MIT", "Apache-2.0", "GPL-3.0", "BSD-2-Clause",
		"BSD-3-Clause", "LGPL-2.1", "LGPL-3.0", "MPL-2.0",
	}
}

// DefaultGitignoreTypes is the gitignore list used when GitHub cannot be reached.
func DefaultGitignoreTypes() []string {
	return []string{"Node", "Python", "Go", "Java", "Rust", "C++", "C", "TypeScript"}
}

// IsLocalLicense returns true if a local template exists for the license type.
func IsLocalLicense(name string) bool {
	return slices.Contains(LocalLicenseTypes(), name)
}

// IsLocalGitignore returns true if a local template exists for the gitignore type.
func IsLocalGitignore(name string) bool {
	return slices.Contains(LocalGitignoreTypes(), name)
}
