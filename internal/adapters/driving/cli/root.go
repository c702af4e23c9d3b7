// Package cli provides the cobra command tree for docschema.
//
// Commands reach the core through driving ports held in package variables.
// The binary injects them once with SetServices, or lazily through a
// Bootstrap hook that sees the persistent flag values.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docschema/internal/core/ports/driving"
	"github.com/custodia-labs/docschema/internal/logger"
)

// version is overridden at build time with -ldflags.
var version = "dev"

// Options holds the values of the persistent flags.
type Options struct {
	// ConfigDir overrides the configuration directory (~/.docschema).
	ConfigDir string

	// SchemasDir overrides the schemas.dir setting.
	SchemasDir string

	// Verbose enables debug logging to stderr.
	Verbose bool
}

// Services bundles the driving ports used by the commands.
type Services struct {
	Schema   driving.SchemaService
	Template driving.TemplateService
	Analysis driving.AnalysisService
	Settings driving.SettingsService

	// Close releases adapter resources such as the cache database. Optional.
	Close func() error
}

// Bootstrap builds services from the persistent flags.
// It runs before the first command that needs them.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	options   Options
	bootstrap Bootstrap

	schemaService   driving.SchemaService
	templateService driving.TemplateService
	analysisService driving.AnalysisService
	settingsService driving.SettingsService
	closeServices   func() error
)

var rootCmd = &cobra.Command{
	Use:   "docschema",
	Short: "Validate project documentation against Markdown schemas",
	Long: `docschema checks Markdown documents against schema files that describe
their expected heading structure, derives skeleton documents from those
schemas, and generates license and .gitignore boilerplate.

Run "docschema mcp serve" to expose the same operations to AI assistants
over the Model Context Protocol.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.docschema)")
	flags.StringVar(&options.SchemasDir, "schemas-dir", "", "directory holding schema.<type>.md files")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetBootstrap sets the hook used to build services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects the driving ports used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	schemaService = s.Schema
	templateService = s.Template
	analysisService = s.Analysis
	settingsService = s.Settings
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		closeServices = nil
	}
	return err
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)
	setColor(cmd.OutOrStdout())

	if bootstrap == nil || schemaService != nil {
		return nil
	}

	svc, err := bootstrap(cmd.Context(), options)
	if err != nil {
		return err
	}
	SetServices(svc)
	return nil
}
