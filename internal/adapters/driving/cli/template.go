package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

var templateCmd = &cobra.Command{
	Use:   "template <type>",
	Short: "Generate a document skeleton from a schema",
	Long: `Derive a skeleton document from the schema for a type.

Every section the schema requires becomes a heading with a placeholder
line underneath. Without --output the skeleton is printed to stdout.

Examples:
  docschema template readme
  docschema template contributing -o CONTRIBUTING.md`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().StringP("output", "o", "", "write the template to this path")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if schemaService == nil {
		return errors.New("schema service not configured")
	}

	kind, err := domain.ParseSchemaKind(args[0])
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("getting output flag: %w", err)
	}

	tpl, err := schemaService.GenerateTemplate(cmd.Context(), kind, output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tpl.OutputPath != "" {
		fmt.Fprintln(out, paint(okStyle, fmt.Sprintf("✅ %s template saved to: %s", kind, tpl.OutputPath)))
		return nil
	}
	fmt.Fprint(out, tpl.Content)
	return nil
}
