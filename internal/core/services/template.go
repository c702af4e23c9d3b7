package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
	"github.com/custodia-labs/docschema/internal/core/ports/driving"
	"github.com/custodia-labs/docschema/internal/logger"
)

// Ensure TemplateService implements the interface.
var _ driving.TemplateService = (*TemplateService)(nil)

// TemplateService generates license and gitignore files.
// Remote templates are preferred when requested; local templates shipped
// with the schemas are the fallback.
type TemplateService struct {
	local     driven.TemplateStore
	documents driven.DocumentStore
	schemas   driven.SchemaStore
	remote    driven.RemoteTemplateSource
	cache     driven.TemplateCache
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewTemplateService creates a new template service.
// The remote source and cache are optional and set separately.
func NewTemplateService(
	local driven.TemplateStore,
	documents driven.DocumentStore,
	schemas driven.SchemaStore,
) *TemplateService {
	return &TemplateService{
		local:     local,
		documents: documents,
		schemas:   schemas,
		now:       time.Now,
	}
}

// SetRemote sets the remote template source.
func (s *TemplateService) SetRemote(remote driven.RemoteTemplateSource) {
	s.remote = remote
}

// SetCache sets the template cache and the age after which entries are refetched.
func (s *TemplateService) SetCache(cache driven.TemplateCache, ttl time.Duration) {
	s.cache = cache
	s.cacheTTL = ttl
}

// GenerateLicense produces a license with author and year filled in.
func (s *TemplateService) GenerateLicense(
	ctx context.Context,
	req domain.LicenseRequest,
) (*domain.GeneratedFile, error) {
	if strings.TrimSpace(req.Type) == "" {
		return nil, fmt.Errorf("%w: license type is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Author) == "" {
		return nil, fmt.Errorf("%w: author is required", domain.ErrInvalidInput)
	}

	logger.Section("License Generation")
	text, source, err := s.resolve(ctx, domain.TemplateCategoryLicense, req.Type, req.UseAPI, domain.IsLocalLicense)
	if err != nil {
		return nil, err
	}

	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	file := &domain.GeneratedFile{
		Category: domain.TemplateCategoryLicense,
		Type:     req.Type,
		Content:  FillLicense(text, req.Author, year),
		Source:   source,
	}
	if err := s.save(ctx, file, req.OutputPath); err != nil {
		return nil, err
	}
	return file, nil
}

// GenerateGitignore produces a .gitignore file.
func (s *TemplateService) GenerateGitignore(
	ctx context.Context,
	req domain.GitignoreRequest,
) (*domain.GeneratedFile, error) {
	if strings.TrimSpace(req.Type) == "" {
		return nil, fmt.Errorf("%w: gitignore type is required", domain.ErrInvalidInput)
	}

	logger.Section("Gitignore Generation")
	text, source, err := s.resolve(ctx, domain.TemplateCategoryGitignore, req.Type, req.UseAPI, domain.IsLocalGitignore)
	if err != nil {
		return nil, err
	}

	file := &domain.GeneratedFile{
		Category: domain.TemplateCategoryGitignore,
		Type:     req.Type,
		Content:  text,
		Source:   source,
	}
	if err := s.save(ctx, file, req.OutputPath); err != nil {
		return nil, err
	}
	return file, nil
}

// ListLicenses returns available license template names.
func (s *TemplateService) ListLicenses(ctx context.Context) domain.TemplateList {
	return s.list(ctx, domain.TemplateCategoryLicense, domain.DefaultLicenseTypes())
}

// ListGitignores returns available gitignore template names.
func (s *TemplateService) ListGitignores(ctx context.Context) domain.TemplateList {
	return s.list(ctx, domain.TemplateCategoryGitignore, domain.DefaultGitignoreTypes())
}

// ListAll returns schemas, licenses and gitignores together.
func (s *TemplateService) ListAll(ctx context.Context) domain.TemplateCatalog {
	return domain.TemplateCatalog{
		Schemas:    schemaInfos(ctx, s.schemas),
		Licenses:   s.ListLicenses(ctx),
		Gitignores: s.ListGitignores(ctx),
	}
}

// resolve returns template text from GitHub (via the cache) when useAPI is
// set, falling back to the local template directory for known local names.
func (s *TemplateService) resolve(
	ctx context.Context,
	category domain.TemplateCategory,
	name string,
	useAPI bool,
	isLocal func(string) bool,
) (string, domain.TemplateSource, error) {
	source := domain.TemplateSourceLocal

	if useAPI && s.remote != nil {
		text, remoteSource, err := s.fetchRemote(ctx, category, name)
		if err == nil {
			return text, remoteSource, nil
		}
		logger.Warn("GitHub API failed, falling back to local template: %v", err)
		if !isLocal(name) {
			return "", "", &domain.TemplateUnavailableError{Name: name, RemoteErr: err}
		}
		source = domain.TemplateSourceLocalAfterFail
	} else if !isLocal(name) {
		return "", "", &domain.TemplateUnavailableError{Name: name}
	}

	text, err := s.local.Get(ctx, category, name)
	if err != nil {
		return "", "", fmt.Errorf("read local %s template: %w", category, err)
	}
	logger.Debug("Using %s for %s %s", source, category, name)
	return text, source, nil
}

// fetchRemote serves fresh cache entries, otherwise fetches from GitHub and
// refreshes the cache. A stale entry is served if GitHub fails.
func (s *TemplateService) fetchRemote(
	ctx context.Context,
	category domain.TemplateCategory,
	name string,
) (string, domain.TemplateSource, error) {
	var stale *domain.CachedTemplate
	if s.cache != nil {
		entry, err := s.cache.Get(ctx, category, name)
		switch {
		case err == nil && !entry.IsExpired(s.cacheTTL, s.now()):
			logger.Debug("Cache hit for %s %s", category, name)
			return entry.Content, domain.TemplateSourceCache, nil
		case err == nil:
			stale = entry
		case !errors.Is(err, domain.ErrCacheMiss):
			logger.Warn("Template cache read failed: %v", err)
		}
	}

	done := logger.Timed("fetch " + string(category) + " " + name)
	text, err := s.remote.Fetch(ctx, category, name)
	done()
	if err != nil {
		if stale != nil {
			logger.Warn("Serving stale cached %s %s: %v", category, name, err)
			return stale.Content, domain.TemplateSourceCache, nil
		}
		return "", "", err
	}

	if s.cache != nil {
		entry := &domain.CachedTemplate{
			ID:        uuid.New().String(),
			Category:  category,
			Name:      name,
			Content:   text,
			FetchedAt: s.now(),
		}
		if err := s.cache.Put(ctx, entry); err != nil {
			logger.Warn("Template cache write failed: %v", err)
		}
	}

	return text, domain.TemplateSourceGitHub, nil
}

func (s *TemplateService) list(
	ctx context.Context,
	category domain.TemplateCategory,
	fallback []string,
) domain.TemplateList {
	if s.remote != nil {
		names, err := s.remote.List(ctx, category)
		if err == nil {
			return domain.TemplateList{Category: category, Names: names, Source: domain.TemplateSourceGitHub}
		}
		logger.Warn("Listing %s templates from GitHub failed: %v", category, err)
	}
	return domain.TemplateList{Category: category, Names: fallback, Source: domain.TemplateSourceFallbackList}
}

func (s *TemplateService) save(ctx context.Context, file *domain.GeneratedFile, outputPath string) error {
	if outputPath == "" {
		return nil
	}
	if err := s.documents.Write(ctx, outputPath, file.Content); err != nil {
		return fmt.Errorf("write %s: %w", file.Category, err)
	}
	file.OutputPath = outputPath
	logger.Info("%s %s written to %s (source: %s)", file.Type, file.Category, outputPath, file.Source)
	return nil
}

// FillLicense substitutes author and year into the placeholder styles used
// by local templates and the licenses/license-templates repository.
func FillLicense(template, author string, year int) string {
	y := strconv.Itoa(year)
	replacements := []struct{ old, new string }{
		{"{{year}}", y},
		{"{{author}}", author},
		{"[year]", y},
		{"[fullname]", author},
		{"[name of copyright owner]", author},
		{"Copyright (c) [yyyy]", "Copyright (c) " + y},
		{"Copyright [yyyy]", "Copyright " + y},
	}
	out := template
	for _, r := range replacements {
		out = strings.ReplaceAll(out, r.old, r.new)
	}
	return out
}
