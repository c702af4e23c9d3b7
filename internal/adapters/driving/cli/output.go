package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", formatText:
		return formatText, nil
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want text, json or yaml)", domain.ErrInvalidInput, s)
	}
}

// formatFlag reads and parses the --format flag of cmd.
func formatFlag(cmd *cobra.Command) (outputFormat, error) {
	s, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("getting format flag: %w", err)
	}
	return parseFormat(s)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, f outputFormat, v any) error {
	switch f {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q is not a structured format", domain.ErrInvalidInput, f)
	}
}

// Styles used by the text renderers.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var colorEnabled bool

// setColor enables styling only when w is an interactive terminal.
func setColor(w io.Writer) {
	f, ok := w.(*os.File)
	colorEnabled = ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
}

func paint(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// completionStyle colours a percentage by how complete it is.
func completionStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return okStyle
	case pct >= 50:
		return warnStyle
	default:
		return badStyle
	}
}

// reportView is the structured form of a validation report.
type reportView struct {
	SchemaType  string   `json:"schemaType" yaml:"schemaType"`
	IsValid     bool     `json:"isValid" yaml:"isValid"`
	Score       int      `json:"score" yaml:"score"`
	Issues      []string `json:"issues" yaml:"issues"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
	Summary     string   `json:"summary" yaml:"summary"`
}

func newReportView(r *domain.ValidationReport) reportView {
	return reportView{
		SchemaType:  r.SchemaKind.String(),
		IsValid:     r.IsValid,
		Score:       r.Score,
		Issues:      nonNil(r.Issues),
		Suggestions: nonNil(r.Suggestions),
		Summary:     r.Summary,
	}
}

type schemaView struct {
	Type        string `json:"type" yaml:"type"`
	Available   bool   `json:"available" yaml:"available"`
	Description string `json:"description" yaml:"description"`
}

type schemaListView struct {
	Dir     string       `json:"dir" yaml:"dir"`
	Schemas []schemaView `json:"schemas" yaml:"schemas"`
}

type analysisView struct {
	ProjectPath     string   `json:"projectPath" yaml:"projectPath"`
	ExistingDocs    []string `json:"existingDocs" yaml:"existingDocs"`
	MissingDocs     []string `json:"missingDocs" yaml:"missingDocs"`
	OtherDocs       []string `json:"otherDocs" yaml:"otherDocs"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	CompletionScore int      `json:"completionScore" yaml:"completionScore"`
	Summary         string   `json:"summary" yaml:"summary"`
}

func newAnalysisView(a *domain.ProjectAnalysis) analysisView {
	return analysisView{
		ProjectPath:     a.ProjectPath,
		ExistingDocs:    nonNil(a.ExistingDocs),
		MissingDocs:     nonNil(a.MissingDocs),
		OtherDocs:       nonNil(a.OtherDocs),
		Recommendations: nonNil(a.Recommendations),
		CompletionScore: a.CompletionScore,
		Summary:         a.Summary,
	}
}

type templateListView struct {
	Category  string   `json:"category" yaml:"category"`
	Source    string   `json:"source" yaml:"source"`
	Templates []string `json:"templates" yaml:"templates"`
}

func newTemplateListView(l domain.TemplateList) templateListView {
	return templateListView{
		Category:  l.Category.String(),
		Source:    l.Source.String(),
		Templates: nonNil(l.Names),
	}
}

type catalogView struct {
	Schemas    []schemaView     `json:"schemas" yaml:"schemas"`
	Licenses   templateListView `json:"licenses" yaml:"licenses"`
	Gitignores templateListView `json:"gitignores" yaml:"gitignores"`
}

func newSchemaViews(infos []domain.SchemaInfo) []schemaView {
	views := make([]schemaView, len(infos))
	for i, info := range infos {
		views[i] = schemaView{
			Type:        info.Kind.String(),
			Available:   info.Available,
			Description: info.Description,
		}
	}
	return views
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// bulletList renders items as an indented list under a heading.
func bulletList(w io.Writer, heading string, items []string, style lipgloss.Style) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, paint(titleStyle, heading))
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", paint(style, "•"), item)
	}
}
