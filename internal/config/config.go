// Package config provides hierarchical configuration management for testgen
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.testgen/config.yml) > user config
// (~/.config/testgen/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the completion service and output settings for testgen.
type Configuration struct {
	// APIKey authenticates against the completion endpoint. Read from
	// OPENAI_API_KEY (preferred) or TESTGEN_API_KEY. A missing key is not a
	// load error; it becomes fatal when the client is constructed, so that
	// commands like setup can run without one.
	APIKey string `koanf:"api_key"`

	// BaseURL is the completion endpoint prefix. Any OpenAI-compatible
	// service works (e.g. a local proxy).
	BaseURL string `koanf:"base_url" validate:"required"`

	// Model is the completion model identifier.
	Model string `koanf:"model" validate:"required"`

	// Temperature controls sampling randomness.
	Temperature float64 `koanf:"temperature" validate:"gte=0,lte=2"`

	// MaxTokens bounds the length of the model reply.
	MaxTokens int `koanf:"max_tokens" validate:"gt=0"`

	// Timeout is the per-request timeout in seconds (0 = client default).
	Timeout int `koanf:"timeout" validate:"gte=0"`

	// MaxRetries bounds transport-level retries for rate limits and
	// server errors. Bad model output is never retried.
	MaxRetries int `koanf:"max_retries" validate:"gte=0,lte=10"`

	// OutputFormat is the default output format for all commands.
	OutputFormat string `koanf:"output_format" validate:"oneof=console json markdown"`
}

// RequestTimeout returns the configured timeout as a duration.
func (c *Configuration) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// projectConfigPath overrides the project config location when non-empty.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil // no user config dir available, defaults apply
	}
	return loadYAMLConfig(k, path, "user")
}

// loadProjectConfig loads the project-level YAML config when present.
// Supports a custom path override (used by the --config flag and tests).
// Unlike the implicit .testgen/config.yml probe, an explicitly named path
// must exist.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return loadYAMLConfig(k, customPath, "project")
	}
	return loadYAMLConfig(k, ProjectConfigPath(), "project")
}

// loadYAMLConfig validates and loads a YAML config file. A missing file is
// not an error; the next source in the priority chain applies.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("TESTGEN_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, applies the OPENAI_API_KEY fallback, and
// validates the result.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// OPENAI_API_KEY wins over config-file values so the standard variable
	// works without any testgen-specific setup.
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: TESTGEN_MAX_TOKENS -> max_tokens
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "TESTGEN_"))
}

// fileExists checks whether a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
