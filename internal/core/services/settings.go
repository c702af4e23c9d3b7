package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/ports/driven"
	"github.com/custodia-labs/docschema/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeySchemasDir       = "schemas.dir"
	KeyTemplatesDir     = "templates.dir"
	KeyGitHubToken      = "github.token"
	KeyGitHubUseAPI     = "github.use_api"
	KeyGitHubTimeoutSec = "github.timeout_seconds"
	KeyCacheEnabled     = "cache.enabled"
	KeyCacheTTLHours    = "cache.ttl_hours"
)

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindInt
)

var settingKeys = map[string]valueKind{
	KeySchemasDir:       kindString,
	KeyTemplatesDir:     kindString,
	KeyGitHubToken:      kindString,
	KeyGitHubUseAPI:     kindBool,
	KeyGitHubTimeoutSec: kindInt,
	KeyCacheEnabled:     kindBool,
	KeyCacheTTLHours:    kindInt,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Schemas: domain.SchemaSettings{
			Dir:          s.getString(KeySchemasDir, defaults.Schemas.Dir),
			TemplatesDir: s.getString(KeyTemplatesDir, defaults.Schemas.TemplatesDir),
		},
		GitHub: domain.GitHubSettings{
			Token:          s.configStore.GetString(KeyGitHubToken),
			UseAPI:         s.getBool(KeyGitHubUseAPI, defaults.GitHub.UseAPI),
			TimeoutSeconds: s.getInt(KeyGitHubTimeoutSec, defaults.GitHub.TimeoutSeconds),
		},
		Cache: domain.CacheSettings{
			Enabled:  s.getBool(KeyCacheEnabled, defaults.Cache.Enabled),
			TTLHours: s.getInt(KeyCacheTTLHours, defaults.Cache.TTLHours),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeySchemasDir, settings.Schemas.Dir},
		{KeyTemplatesDir, settings.Schemas.TemplatesDir},
		{KeyGitHubUseAPI, settings.GitHub.UseAPI},
		{KeyGitHubTimeoutSec, settings.GitHub.TimeoutSeconds},
		{KeyCacheEnabled, settings.Cache.Enabled},
		{KeyCacheTTLHours, settings.Cache.TTLHours},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only persist the token when set, so saving defaults never clears it.
	if settings.GitHub.Token != "" {
		if err := s.configStore.Set(KeyGitHubToken, settings.GitHub.Token); err != nil {
			return fmt.Errorf("save %s: %w", KeyGitHubToken, err)
		}
	}

	return nil
}

// Set updates a single setting, converting value to the key's type.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var typed any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		typed = b
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s expects a non-negative integer, got %q", domain.ErrInvalidInput, key, value)
		}
		typed = n
	default:
		typed = value
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every recognised config key, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
