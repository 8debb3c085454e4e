// Package cmd implements the CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/fact/internal/config"
	apperrors "github.com/zorak1103/fact/internal/errors"
	"github.com/zorak1103/fact/internal/logging"
	"github.com/zorak1103/fact/internal/version"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitConfigError = 2
)

var (
	cfgFile        string
	verbose        bool
	arithmeticFlag string
	overflowFlag   string
	cfg            *config.Config
	errConfigLoad  error
)

var rootCmd = &cobra.Command{
	Use:   "fact [N]",
	Short: "Compute the factorial of an integer",
	Long: `fact reads a single integer and prints its factorial, computed by
direct recursion: 0! = 1 and n! = n * (n-1)!.

Without an argument it prompts on stdout and reads one whitespace-delimited
token from stdin. Negative inputs are rejected. Results can be computed as
int32, int64 or arbitrary-precision integers, and fixed-width overflow either
fails with an error or wraps around silently.`,
	Example: `  # Prompt for a number
  fact

  # Compute directly
  fact 20

  # Arbitrary precision
  fact --arithmetic big 50

  # Negative numbers must follow --
  fact -- -3`,
	Version:      version.GetFullVersion(),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		skipConfig := cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "version"
		if skipConfig {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			// Stored rather than returned so each command decides whether it needs config.
			errConfigLoad = err
			if IsVerbose() {
				logging.Warnf("could not load config: %v", err)
			}
			return nil
		}
		errConfigLoad = nil

		if err := applyFlagOverrides(cfg); err != nil {
			return err
		}

		level := cfg.Log.Level
		if IsVerbose() {
			level = "debug"
		}
		if err := logging.Setup(level); err != nil {
			return err
		}

		if cfg.ConfigFilePath != "" {
			logging.Debugf("loaded configuration from: %s", cfg.ConfigFilePath)
		}

		return nil
	},
	RunE: runFactorial,
}

// Execute runs the root command and exits with a code derived from the returned error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cfgErr *apperrors.ConfigurationError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}
	return ExitError
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&arithmeticFlag, "arithmetic", "", "result representation: int32, int64 or big (overrides config)")
	rootCmd.PersistentFlags().StringVar(&overflowFlag, "overflow", "", "overflow policy: error or wrap (overrides config)")
}

// applyFlagOverrides copies explicitly set flags over the loaded configuration
// and validates the result.
func applyFlagOverrides(c *config.Config) error {
	if arithmeticFlag == "" && overflowFlag == "" {
		return nil
	}
	if arithmeticFlag != "" {
		c.Factorial.Arithmetic = arithmeticFlag
	}
	if overflowFlag != "" {
		c.Factorial.Overflow = overflowFlag
	}
	return c.Validate()
}

// requireConfig returns the loaded configuration or the error that prevented loading it.
func requireConfig() (*config.Config, error) {
	if err := GetConfigLoadError(); err != nil {
		return nil, err
	}
	c := GetConfig()
	if c == nil {
		return nil, &apperrors.ConfigurationError{
			ConfigPath: cfgFile,
			Err:        fmt.Errorf("%w: configuration not loaded", config.Err),
		}
	}
	return c, nil
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// GetConfigLoadError returns any error encountered during config loading.
func GetConfigLoadError() error {
	return errConfigLoad
}

// IsVerbose returns whether verbose mode is enabled via the -v flag.
func IsVerbose() bool {
	return verbose
}
