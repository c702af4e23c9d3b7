package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

// ErrDocumentInvalid is returned when a validated document scores below the pass mark.
var ErrDocumentInvalid = errors.New("document does not match schema")

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a document against a schema",
	Long: `Validate a Markdown document against the schema for its type.

The document's headings are compared with the headings the schema requires.
The score starts at 100 and drops for every missing section, misplaced
heading or empty section. Documents scoring 70 or more pass.

Schema types: readme, api, architecture, features, tech_stack, todo,
backlog, changelog, contributing, prompt.

Examples:
  docschema validate README.md --schema readme
  docschema validate docs/API.md -s api --format json
  docschema validate CHANGELOG.md -s changelog --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("schema", "s", "", "schema type to validate against (required)")
	validateCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	validateCmd.Flags().BoolP("watch", "w", false, "re-validate whenever the file changes")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if schemaService == nil {
		return errors.New("schema service not configured")
	}

	schemaFlag, err := cmd.Flags().GetString("schema")
	if err != nil {
		return fmt.Errorf("getting schema flag: %w", err)
	}
	kind, err := domain.ParseSchemaKind(schemaFlag)
	if err != nil {
		return err
	}
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	if watch {
		return watchDocument(cmd, args[0], kind, format)
	}

	report, err := schemaService.ValidateFile(cmd.Context(), args[0], kind)
	if err != nil {
		return err
	}
	if err := writeReport(cmd.OutOrStdout(), args[0], report, format); err != nil {
		return err
	}
	if !report.IsValid {
		return fmt.Errorf("%w: %s scored %d/100", ErrDocumentInvalid, args[0], report.Score)
	}
	return nil
}

func watchDocument(cmd *cobra.Command, path string, kind domain.SchemaKind, format outputFormat) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := schemaService.WatchFile(ctx, path, kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatText {
		fmt.Fprintln(out, paint(dimStyle, fmt.Sprintf("Watching %s (Ctrl+C to stop)", path)))
	}

	for result := range results {
		if result.Err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), paint(badStyle, "✗ "+result.Err.Error()))
			continue
		}
		if format == formatText && !result.Change.At.IsZero() {
			fmt.Fprintln(out, paint(dimStyle, fmt.Sprintf(
				"[%s] %s %s", result.Change.At.Format("15:04:05"), path, result.Change.Type)))
		}
		if format == formatYAML {
			fmt.Fprintln(out, "---")
		}
		if err := writeReport(out, path, result.Report, format); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(w io.Writer, path string, report *domain.ValidationReport, format outputFormat) error {
	if format != formatText {
		return writeStructured(w, format, newReportView(report))
	}

	fmt.Fprintf(w, "%s %s\n", paint(titleStyle, path), paint(dimStyle, "("+report.SchemaKind.String()+" schema)"))
	summaryStyle := okStyle
	if !report.IsValid {
		summaryStyle = badStyle
	}
	fmt.Fprintln(w, paint(summaryStyle, report.Summary))
	fmt.Fprintf(w, "Score: %s\n", scoreBar(report.Score))
	bulletList(w, "Issues:", report.Issues, badStyle)
	bulletList(w, "Suggestions:", report.Suggestions, warnStyle)
	return nil
}

// scoreBar renders a score as "85/100 [████████░░]".
func scoreBar(score int) string {
	const width = 10
	filled := max(0, min(width, score/10))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := okStyle
	switch {
	case score < domain.PassingScore/2:
		style = badStyle
	case score < domain.PassingScore:
		style = warnStyle
	}
	return fmt.Sprintf("%d/100 %s", score, paint(style, "["+bar+"]"))
}
