package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docschema/internal/core/domain"
)

var gitignoreCmd = &cobra.Command{
	Use:   "gitignore <type>",
	Short: "Generate a .gitignore file",
	Long: `Generate a .gitignore for a language or framework.

Templates come from the GitHub gitignore API (cached locally) and fall back
to the bundled templates for Node.js, Python and Go. Use --local to skip
GitHub entirely.

Examples:
  docschema gitignore Go
  docschema gitignore Python -o .gitignore`,
	Args: cobra.ExactArgs(1),
	RunE: runGitignore,
}

func init() {
	gitignoreCmd.Flags().StringP("output", "o", "", "write the file to this path")
	gitignoreCmd.Flags().Bool("local", false, "use bundled templates only")
	rootCmd.AddCommand(gitignoreCmd)
}

func runGitignore(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	output, local, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	file, err := templateService.GenerateGitignore(cmd.Context(), domain.GitignoreRequest{
		Type:       args[0],
		OutputPath: output,
		UseAPI:     !local,
	})
	if err != nil {
		return err
	}

	writeGeneratedFile(cmd.OutOrStdout(), file, ".gitignore")
	return nil
}
