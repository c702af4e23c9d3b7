package domain

import "time"

// SchemaSettings holds where schema and boilerplate files live.
type SchemaSettings struct {
	// Dir is the directory holding schema.<kind>.md files.
	Dir string

	// TemplatesDir is the directory holding licenses/ and gitignore/ templates.
	TemplatesDir string
}

// GitHubSettings holds remote template source configuration.
type GitHubSettings struct {
	// Token is an optional personal access token for higher rate limits.
	Token string

	// UseAPI enables fetching templates from GitHub by default.
	UseAPI bool

	// TimeoutSeconds bounds each remote fetch.
	TimeoutSeconds int
}

// Timeout returns the fetch timeout as a duration.
func (g GitHubSettings) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return DefaultGitHubTimeout
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// HasToken returns true if a token is configured.
func (g GitHubSettings) HasToken() bool {
	return g.Token != ""
}

// CacheSettings holds template cache configuration.
type CacheSettings struct {
	// Enabled turns the template cache on.
	Enabled bool

	// TTLHours is how long cached templates stay fresh.
	TTLHours int
}

// TTL returns the cache lifetime as a duration.
func (c CacheSettings) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Schemas holds schema and template locations.
	Schemas SchemaSettings

	// GitHub holds remote template source settings.
	GitHub GitHubSettings

	// Cache holds template cache settings.
	Cache CacheSettings
}

// Defaults for settings absent from the config file.
const (
	DefaultSchemasDir     = "schemas"
	DefaultTemplatesDir   = "schemas/templates"
	DefaultGitHubTimeout  = 30 * time.Second
	DefaultCacheTTLHours  = 24
	defaultTimeoutSeconds = 30
)

// DefaultAppSettings returns settings with sensible defaults.
// Schema paths are relative to the working directory until configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Schemas: SchemaSettings{
			Dir:          DefaultSchemasDir,
			TemplatesDir: DefaultTemplatesDir,
		},
		GitHub: GitHubSettings{
			UseAPI:         true,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Cache: CacheSettings{
			Enabled:  true,
			TTLHours: DefaultCacheTTLHours,
		},
	}
}
