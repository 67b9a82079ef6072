// Package config provides layered configuration for the changelog CLI using koanf.
// Configuration is loaded with priority: environment variables (CHANGELOG_*) >
// project config (.changelog.yml) > defaults. Command-line flags are applied
// on top by the cli package.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CHANGELOG_"

// Configuration represents the changelog CLI configuration
type Configuration struct {
	// LineWidth is the column at which change messages wrap.
	// 0 means the width of the terminal (80 when not attached to one).
	// Can be set via CHANGELOG_LINE_WIDTH env var.
	LineWidth int `koanf:"line_width" validate:"gte=0"`

	// Exclude lists filename patterns to skip in the change entry directory,
	// e.g. ".gitkeep" or "*.md". Env var takes a comma-separated list.
	Exclude []string `koanf:"exclude"`

	// LogLevel controls diagnostic output on stderr.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// NoColor disables colored terminal output.
	NoColor bool `koanf:"no_color"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .changelog.yml).
	// An explicit path must exist; the default path is optional.
	ProjectConfigPath string
}

// Load loads configuration from project and environment sources.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k, projectPathOrDefault(opts.ProjectConfigPath))
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project-level YAML config if present.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := projectPathOrDefault(customPath)

	if !fileExists(path) {
		if customPath != "" {
			return &ValidationError{FilePath: customPath, Message: "config file not found"}
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load project config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransformValue), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, source string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Exclude = compact(cfg.Exclude)

	if err := ValidateConfigValues(&cfg, source); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// projectPathOrDefault returns customPath, or the default project path if empty.
func projectPathOrDefault(customPath string) string {
	if customPath != "" {
		return customPath
	}
	return ProjectConfigPath()
}

// compact trims patterns and drops empty ones (e.g. from "a,,b").
func compact(patterns []string) []string {
	out := patterns[:0]
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOG_LINE_WIDTH -> line_width
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// envTransformValue maps the key like envTransform and splits list-valued
// variables on commas (CHANGELOG_EXCLUDE=".gitkeep,*.md").
func envTransformValue(key, value string) (string, interface{}) {
	key = envTransform(key)
	if key == "exclude" {
		return key, strings.Split(value, ",")
	}
	return key, value
}
