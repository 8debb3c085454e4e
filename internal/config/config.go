// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	apperrors "github.com/zorak1103/fact/internal/errors"
	"github.com/zorak1103/fact/internal/factorial"
	"github.com/zorak1103/fact/internal/logging"
)

// Common errors
var (
	Err = errors.New("config error")
)

// MaxInputLimit is the highest accepted value for factorial.max_input.
const MaxInputLimit = 1000000

// Config represents the application configuration
type Config struct {
	Factorial FactorialConfig `mapstructure:"factorial" yaml:"factorial"`
	Input     InputConfig     `mapstructure:"input" yaml:"input"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-" yaml:"-"`
}

// FactorialConfig selects how results are represented and bounded
type FactorialConfig struct {
	Arithmetic string `mapstructure:"arithmetic" yaml:"arithmetic"`
	Overflow   string `mapstructure:"overflow" yaml:"overflow"`
	MaxInput   int64  `mapstructure:"max_input" yaml:"max_input"`
}

// InputConfig contains input parsing settings
type InputConfig struct {
	// Lenient reads input the way cin >> int does: a leading integer prefix is
	// used and anything without one becomes 0 instead of failing.
	Lenient bool `mapstructure:"lenient" yaml:"lenient"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Prompt string `mapstructure:"prompt" yaml:"prompt"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fact")
		v.AddConfigPath("/etc/fact")
	}

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, &apperrors.ConfigurationError{
				ConfigPath: configFile,
				Err:        fmt.Errorf("%w: error reading config file: %w", Err, err),
			}
		}
		// Config file not found; using defaults and env vars
	}

	// Environment variable support
	v.SetEnvPrefix("FACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigurationError{
			ConfigPath: sourceName(v.ConfigFileUsed()),
			Err:        fmt.Errorf("%w: error unmarshaling config: %w", Err, err),
		}
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	return &Config{
		Factorial: FactorialConfig{
			Arithmetic: string(factorial.Int64),
			Overflow:   string(factorial.OverflowError),
			MaxInput:   factorial.DefaultMaxInput,
		},
		Output: OutputConfig{Prompt: "Enter a number: "},
		Log:    LogConfig{Level: "warn"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("factorial.arithmetic", d.Factorial.Arithmetic)
	v.SetDefault("factorial.overflow", d.Factorial.Overflow)
	v.SetDefault("factorial.max_input", d.Factorial.MaxInput)

	v.SetDefault("input.lenient", d.Input.Lenient)

	v.SetDefault("output.prompt", d.Output.Prompt)

	v.SetDefault("log.level", d.Log.Level)
}

func sourceName(configFile string) string {
	if configFile == "" {
		return "(defaults/environment)"
	}
	return configFile
}

// Validate ensures all fields hold supported values.
// Failures are returned as *apperrors.ConfigurationError wrapping Err.
func (c *Config) Validate() error {
	configSource := sourceName(c.ConfigFilePath)

	invalid := func(key string, err error) error {
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        key,
			Err:        fmt.Errorf("%w: %w", Err, err),
		}
	}

	if _, err := factorial.ParseArithmetic(c.Factorial.Arithmetic); err != nil {
		return invalid("factorial.arithmetic", err)
	}

	if _, err := factorial.ParseOverflowPolicy(c.Factorial.Overflow); err != nil {
		return invalid("factorial.overflow", err)
	}

	if c.Factorial.MaxInput < 1 || c.Factorial.MaxInput > MaxInputLimit {
		return invalid("factorial.max_input",
			fmt.Errorf("must be between 1 and %d, got %d", MaxInputLimit, c.Factorial.MaxInput))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", err)
	}

	return nil
}

// Computer builds a factorial.Computer from the validated configuration.
func (c *Config) Computer() (*factorial.Computer, error) {
	arithmetic, err := factorial.ParseArithmetic(c.Factorial.Arithmetic)
	if err != nil {
		return nil, err
	}
	policy, err := factorial.ParseOverflowPolicy(c.Factorial.Overflow)
	if err != nil {
		return nil, err
	}

	return factorial.New(
		factorial.WithArithmetic(arithmetic),
		factorial.WithOverflowPolicy(policy),
		factorial.WithMaxInput(c.Factorial.MaxInput),
	), nil
}
