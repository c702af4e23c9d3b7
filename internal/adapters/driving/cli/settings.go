package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change docschema settings.

Settings live in config.toml inside the configuration directory
(~/.docschema by default, see --config-dir).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting by its key.

Keys:
  schemas.dir             directory holding schema.<type>.md files
  templates.dir           directory holding bundled license/gitignore templates
  github.token            personal access token for the GitHub API
  github.use_api          fetch templates from GitHub (true/false)
  github.timeout_seconds  timeout for each GitHub request
  cache.enabled           cache fetched templates (true/false)
  cache.ttl_hours         hours before a cached template is refetched`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, paint(titleStyle, "Current Settings"))
	fmt.Fprintln(out, paint(dimStyle, settingsService.Path()))
	fmt.Fprintln(out)

	section(out, "Schemas")
	fmt.Fprintf(out, "  Directory:           %s\n", settings.Schemas.Dir)
	fmt.Fprintf(out, "  Templates directory: %s\n", settings.Schemas.TemplatesDir)
	fmt.Fprintln(out)

	section(out, "GitHub")
	fmt.Fprintf(out, "  Use API: %t\n", settings.GitHub.UseAPI)
	if settings.GitHub.HasToken() {
		fmt.Fprintf(out, "  Token:   %s\n", maskToken(settings.GitHub.Token))
	} else {
		fmt.Fprintf(out, "  Token:   %s\n", paint(dimStyle, "not set (60 requests/hour)"))
	}
	fmt.Fprintf(out, "  Timeout: %s\n", settings.GitHub.Timeout())
	fmt.Fprintln(out)

	section(out, "Cache")
	fmt.Fprintf(out, "  Enabled: %t\n", settings.Cache.Enabled)
	fmt.Fprintf(out, "  TTL:     %s\n", settings.Cache.TTL())

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}

	shown := value
	if key == "github.token" {
		shown = maskToken(value)
	}
	fmt.Fprintln(cmd.OutOrStdout(), paint(okStyle, fmt.Sprintf("✓ %s = %s", key, shown)))
	return nil
}

func section(w io.Writer, name string) {
	fmt.Fprintln(w, paint(titleStyle, name+":"))
}

// maskToken hides all but the ends of a secret.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
