package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Template catalogue commands",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schema, license and .gitignore templates",
	Long: `List every template docschema can generate.

Use --category to restrict the listing to licenses or gitignores. License
and .gitignore names come from GitHub when it is reachable, otherwise a
built-in list is shown.`,
	Args: cobra.NoArgs,
	RunE: runTemplatesList,
}

func init() {
	templatesListCmd.Flags().StringP("category", "c", "all", "category to list: all, schema, license or gitignore")
	templatesListCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	templatesCmd.AddCommand(templatesListCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("getting category flag: %w", err)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var list domain.TemplateList
	switch strings.ToLower(category) {
	case "all", "":
		catalog := templateService.ListAll(ctx)
		if format != formatText {
			return writeStructured(out, format, catalogView{
				Schemas:    newSchemaViews(catalog.Schemas),
				Licenses:   newTemplateListView(catalog.Licenses),
				Gitignores: newTemplateListView(catalog.Gitignores),
			})
		}
		writeSchemaNames(out, catalog.Schemas)
		writeTemplateList(out, catalog.Licenses)
		writeTemplateList(out, catalog.Gitignores)
		return nil
	case "schema", "schemas":
		infos := templateService.ListAll(ctx).Schemas
		if format != formatText {
			return writeStructured(out, format, newSchemaViews(infos))
		}
		writeSchemaNames(out, infos)
		return nil
	case "license", "licenses":
		list = templateService.ListLicenses(ctx)
	case "gitignore", "gitignores":
		list = templateService.ListGitignores(ctx)
	default:
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	if format != formatText {
		return writeStructured(out, format, newTemplateListView(list))
	}
	writeTemplateList(out, list)
	return nil
}

func writeSchemaNames(w io.Writer, infos []domain.SchemaInfo) {
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Available {
			names = append(names, info.Kind.String())
		}
	}
	fmt.Fprintf(w, "%s %s\n", paint(titleStyle, "Schemas"), paint(dimStyle, fmt.Sprintf("(%d)", len(names))))
	fmt.Fprintf(w, "  %s\n\n", strings.Join(names, ", "))
}

func writeTemplateList(w io.Writer, list domain.TemplateList) {
	heading := "Licenses"
	if list.Category == domain.TemplateCategoryGitignore {
		heading = "Gitignores"
	}
	fmt.Fprintf(w, "%s %s\n", paint(titleStyle, heading),
		paint(dimStyle, fmt.Sprintf("(%d, from %s)", len(list.Names), list.Source)))
	fmt.Fprintf(w, "  %s\n\n", strings.Join(list.Names, ", "))
}
