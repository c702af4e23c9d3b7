package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

var licenseCmd = &cobra.Command{
	Use:   "license <type>",
	Short: "Generate a LICENSE file",
	Long: `Generate license text with the author and year filled in.

The template is fetched from the licenses/license-templates repository on
GitHub (cached locally) and falls back to the bundled templates for MIT,
Apache-2.0 and GPL-3.0. Use --local to skip GitHub entirely.

Examples:
  docschema license MIT --author "Jane Doe"
  docschema license Apache-2.0 --author "Acme Ltd" --year 2024 -o LICENSE`,
	Args: cobra.ExactArgs(1),
	RunE: runLicense,
}

func init() {
	licenseCmd.Flags().String("author", "", "copyright holder (required)")
	licenseCmd.Flags().Int("year", 0, "copyright year (default current year)")
	licenseCmd.Flags().StringP("output", "o", "", "write the license to this path")
	licenseCmd.Flags().Bool("local", false, "use bundled templates only")
	_ = licenseCmd.MarkFlagRequired("author")
	rootCmd.AddCommand(licenseCmd)
}

func runLicense(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	author, err := cmd.Flags().GetString("author")
	if err != nil {
		return fmt.Errorf("getting author flag: %w", err)
	}
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return fmt.Errorf("getting year flag: %w", err)
	}
	output, local, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	file, err := templateService.GenerateLicense(cmd.Context(), domain.LicenseRequest{
		Type:       args[0],
		Author:     author,
		Year:       year,
		OutputPath: output,
		UseAPI:     !local,
	})
	if err != nil {
		return err
	}

	writeGeneratedFile(cmd.OutOrStdout(), file, "license")
	return nil
}

// fileFlags reads the --output and --local flags shared by the boilerplate commands.
func fileFlags(cmd *cobra.Command) (output string, local bool, err error) {
	output, err = cmd.Flags().GetString("output")
	if err != nil {
		return "", false, fmt.Errorf("getting output flag: %w", err)
	}
	local, err = cmd.Flags().GetBool("local")
	if err != nil {
		return "", false, fmt.Errorf("getting local flag: %w", err)
	}
	return output, local, nil
}

// writeGeneratedFile prints the file content, or a confirmation when it was saved.
func writeGeneratedFile(w io.Writer, file *domain.GeneratedFile, noun string) {
	if file.Saved() {
		fmt.Fprintln(w, paint(okStyle, fmt.Sprintf("✅ %s %s generated and saved to: %s (source: %s)",
			file.Type, noun, file.OutputPath, file.Source)))
		return
	}
	fmt.Fprint(w, file.Content)
}
