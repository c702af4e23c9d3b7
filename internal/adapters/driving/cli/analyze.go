package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Report which standard documentation files a project has",
	Long: `Check a project directory for the standard documentation files
(README, FEATURES, TODO, BACKLOG, CHANGELOG, CONTRIBUTING, ARCHITECTURE)
and list any other Markdown files found below it.

The path defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	analysis, err := analysisService.Analyze(cmd.Context(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != formatText {
		return writeStructured(out, format, newAnalysisView(analysis))
	}

	fmt.Fprintln(out, paint(titleStyle, "Documentation analysis: "+analysis.ProjectPath))
	fmt.Fprintln(out, analysis.Summary)
	fmt.Fprintf(out, "Completion: %s\n", paint(completionStyle(analysis.CompletionScore),
		fmt.Sprintf("%d%%", analysis.CompletionScore)))
	fmt.Fprintln(out)
	bulletList(out, "Existing:", analysis.ExistingDocs, okStyle)
	bulletList(out, "Missing:", analysis.MissingDocs, badStyle)
	bulletList(out, "Other Markdown files:", analysis.OtherDocs, dimStyle)
	bulletList(out, "Recommendations:", analysis.Recommendations, warnStyle)
	return nil
}
