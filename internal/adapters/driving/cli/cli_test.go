package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/docschema/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/docschema/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docschema/internal/core/domain"
	"github.com/custodia-labs/docschema/internal/core/services"
)

const readmeSchema = `# README Schema

## Structure Specification

### 1. Installation
### 2. Usage
### License (optional)

## Notes
`

const validReadme = `# README Schema

Overview of the project. This paragraph exists so the document is long
enough to pass the length check without any padding elsewhere.

## Structure Specification

What the project does.

### 1. Installation

Run go install.

### 2. Usage

Run the binary.

## Notes

Nothing else.
`

// testEnv holds the stores behind the services injected by setupTestServices.
type testEnv struct {
	documents  *memory.DocumentStore
	config     *memory.ConfigStore
	projectDir string
}

// setupTestServices wires real services over in-memory stores.
func setupTestServices(t *testing.T) (*testEnv, func()) {
	t.Helper()

	schemas := memory.NewSchemaStore(map[domain.SchemaKind]string{
		domain.SchemaKindReadme: readmeSchema,
	})
	documents := memory.NewDocumentStore()
	local := memory.NewTemplateStore()
	local.Put(domain.TemplateCategoryLicense, "MIT", "MIT License\n\nCopyright (c) {{year}} {{author}}\n")
	local.Put(domain.TemplateCategoryGitignore, "Go", "*.test\nvendor/\n")
	config := memory.NewConfigStore()

	projectDir := t.TempDir()
	for _, name := range []string{"README.md", "CHANGELOG.md"} {
		if err := os.WriteFile(filepath.Join(projectDir, name), []byte("# "+name+"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	SetServices(&Services{
		Schema:   services.NewSchemaService(schemas, documents),
		Template: services.NewTemplateService(local, documents, schemas),
		Analysis: services.NewAnalysisService(filesystem.NewScanner()),
		Settings: services.NewSettingsService(config),
	})
	origBootstrap := bootstrap
	bootstrap = nil

	cleanup := func() {
		SetServices(nil)
		bootstrap = origBootstrap
	}
	return &testEnv{documents: documents, config: config, projectDir: projectDir}, cleanup
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults, since cobra keeps values between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
