package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/docschema/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docschema/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/docschema/internal/adapters/driven/github"
	"github.com/custodia-labs/docschema/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docschema/internal/adapters/driven/watch"
	"github.com/custodia-labs/docschema/internal/adapters/driving/cli"
	"github.com/custodia-labs/docschema/internal/core/services"
	"github.com/custodia-labs/docschema/internal/logger"
)

// staleRetention is how many TTLs an expired cache entry is kept as a
// fallback for when GitHub is unreachable.
const staleRetention = 7

// wire builds the services for one CLI invocation.
func wire(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if opts.SchemasDir != "" {
		settings.Schemas.Dir = opts.SchemasDir
	}
	logger.Debug("Config: %s", configStore.Path())
	logger.Debug("Schemas: %s, templates: %s", settings.Schemas.Dir, settings.Schemas.TemplatesDir)

	schemas := filesystem.NewSchemaStore(settings.Schemas.Dir)
	documents := filesystem.NewDocumentStore()

	schemaService := services.NewSchemaService(schemas, documents)
	schemaService.SetFileWatcher(watch.NewWatcher(watch.DefaultDebounce))

	templateService := services.NewTemplateService(
		filesystem.NewTemplateStore(settings.Schemas.TemplatesDir), documents, schemas,
	)

	svc := &cli.Services{
		Schema:   schemaService,
		Template: templateService,
		Analysis: services.NewAnalysisService(filesystem.NewScanner()),
		Settings: settingsService,
	}

	if !settings.GitHub.UseAPI {
		logger.Debug("GitHub API disabled, using local templates only")
		return svc, nil
	}

	source, err := github.New(ctx, github.Config{
		Token:   settings.GitHub.Token,
		Timeout: settings.GitHub.Timeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("configure GitHub: %w", err)
	}
	templateService.SetRemote(source)
	logger.Debug("GitHub API enabled (authenticated: %t)", settings.GitHub.HasToken())

	if !settings.Cache.Enabled {
		return svc, nil
	}

	dataDir := ""
	if opts.ConfigDir != "" {
		dataDir = filepath.Join(opts.ConfigDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Template cache unavailable: %v", err)
		return svc, nil
	}

	ttl := settings.Cache.TTL()
	cache := store.TemplateCache()
	templateService.SetCache(cache, ttl)
	svc.Close = store.Close

	if ttl > 0 {
		n, err := cache.Purge(ctx, time.Now().Add(-ttl*staleRetention))
		if err != nil {
			logger.Warn("Purging template cache: %v", err)
		} else if n > 0 {
			logger.Debug("Purged %d stale cache entries", n)
		}
	}
	logger.Debug("Template cache: %s", store.Path())

	return svc, nil
}
