package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zorak1103/fact/internal/templates"
)

var (
	force   bool
	initDir string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration",
	Long: `Init writes a sample config.yaml and .env into the target directory.

Existing files are kept unless --force is given. fact runs without any
configuration; these files only document the available settings.`,
	Example: `  # Initialize in current directory
  fact init

  # Force overwrite existing files
  fact init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "🔧 Initializing fact configuration...")

		files := []struct {
			name    string
			content []byte
		}{
			{"config.yaml", templates.ConfigYAML},
			{".env", templates.EnvFile},
		}

		for _, f := range files {
			path := filepath.Join(initDir, f.name)

			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(out, "⚠️  Skipping %s (already exists, use --force to overwrite)\n", path)
				continue
			}

			if err := os.WriteFile(path, f.content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(out, "✅ Created %s\n", path)
		}

		fmt.Fprintln(out, "\n🎉 Initialization complete!")
		fmt.Fprintln(out, "   Run 'fact config' to see the effective settings.")

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration files")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "directory to write the files into")
}
