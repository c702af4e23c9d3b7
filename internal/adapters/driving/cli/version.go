package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	// Skip the root hook so version never touches config or storage.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("docschema version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
