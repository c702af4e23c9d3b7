package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List schema types and their availability",
	Args:  cobra.NoArgs,
	RunE:  runSchemas,
}

func init() {
	schemasCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(cmd *cobra.Command, _ []string) error {
	if schemaService == nil {
		return errors.New("schema service not configured")
	}
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}

	infos := schemaService.List(cmd.Context())
	out := cmd.OutOrStdout()
	if format != formatText {
		return writeStructured(out, format, schemaListView{
			Dir:     schemaService.Dir(),
			Schemas: newSchemaViews(infos),
		})
	}

	fmt.Fprintf(out, "%s %s\n", paint(titleStyle, "Schemas"), paint(dimStyle, "("+schemaService.Dir()+")"))
	for _, info := range infos {
		mark := paint(okStyle, "✓")
		if !info.Available {
			mark = paint(badStyle, "✗")
		}
		fmt.Fprintf(out, "  %s %-14s %s\n", mark, info.Kind, paint(dimStyle, info.Description))
	}

	available := 0
	for _, info := range infos {
		if info.Available {
			available++
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d of %d schemas available\n", available, len(infos))
	return nil
}
