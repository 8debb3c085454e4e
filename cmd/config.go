package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zorak1103/fact/internal/config"
	"github.com/zorak1103/fact/internal/version"
	"gopkg.in/yaml.v3"
)

var configAsYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the effective configuration that fact will use at runtime.

This shows the merged configuration from:
  1. Default values
  2. Configuration file (config.yaml)
  3. Environment variables (FACT_ prefix)
  4. Command-line flags (highest priority)`,
	Example: `  # Show current configuration
  fact config

  # Dump as YAML, suitable as a starting config.yaml
  fact config --yaml > config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if configAsYAML {
			return writeConfigYAML(out, c)
		}

		writeConfigSummary(out, c)
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configAsYAML, "yaml", false, "print the configuration as YAML")
}

func writeConfigYAML(w io.Writer, c *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode configuration as YAML: %w", err)
	}
	return enc.Close()
}

func writeConfigSummary(w io.Writer, c *config.Config) {
	fmt.Fprintln(w, "=== fact Effective Configuration ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "🏷️  Version:        %s\n", version.GetVersion())
	fmt.Fprintf(w, "📄 Config File:    %s\n", describeConfigFile(c.ConfigFilePath))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "🔢 Factorial:")
	fmt.Fprintf(w, "   Arithmetic:     %s\n", c.Factorial.Arithmetic)
	fmt.Fprintf(w, "   Overflow:       %s\n", c.Factorial.Overflow)
	fmt.Fprintf(w, "   Max Input:      %d\n", c.Factorial.MaxInput)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "⌨️  Input:")
	fmt.Fprintf(w, "   Lenient:        %v\n", c.Input.Lenient)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "🖨️  Output:")
	fmt.Fprintf(w, "   Prompt:         %q\n", c.Output.Prompt)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📝 Logging:")
	fmt.Fprintf(w, "   Level:          %s\n", c.Log.Level)
}

func describeConfigFile(path string) string {
	if path == "" {
		return "❌ None (defaults and environment only)"
	}
	return path
}
