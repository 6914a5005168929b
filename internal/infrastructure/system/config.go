// Package system loads the tool-wide configuration (~/.ec2blocks.yaml):
// default region and endpoint, output defaults, redaction and pagination
// limits. Per-invocation config lives in invocation documents instead.
package system

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/reglet-dev/ec2blocks/internal/infrastructure/redaction"
)

// Config represents the global configuration file (~/.ec2blocks.yaml).
type Config struct {
	Region     string           `yaml:"region" mapstructure:"region"`
	Endpoint   string           `yaml:"endpoint" mapstructure:"endpoint"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Redaction  RedactionConfig  `yaml:"redaction" mapstructure:"redaction"`
	Pagination PaginationConfig `yaml:"pagination" mapstructure:"pagination"`
}

// OutputConfig sets the default event sink.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Indent bool   `yaml:"indent" mapstructure:"indent"`
}

// RedactionConfig configures how sensitive data is sanitized.
type RedactionConfig struct {
	HashMode HashModeConfig `yaml:"hash_mode" mapstructure:"hash_mode"`
	Patterns []string       `yaml:"patterns" mapstructure:"patterns"`
	Paths    []string       `yaml:"paths" mapstructure:"paths"`
}

// HashModeConfig controls hash-based redaction.
type HashModeConfig struct {
	Salt    string `yaml:"salt" mapstructure:"salt"`
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
}

// PaginationConfig bounds walks started from the CLI.
type PaginationConfig struct {
	// MaxPages caps pages per walk. 0 means unbounded.
	MaxPages int `yaml:"max_pages" mapstructure:"max_pages"`
	// PageSize is forwarded as MaxResults. 0 leaves it to the service.
	PageSize int32 `yaml:"page_size" mapstructure:"page_size"`
}

// DefaultConfig returns a Config with safe defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
		},
		Redaction: RedactionConfig{
			Patterns: []string{},
			Paths:    []string{},
		},
	}
}

// SetDefaults registers DefaultConfig's values on v so environment
// variables bind to every key.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("region", d.Region)
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.indent", d.Output.Indent)
	v.SetDefault("redaction.patterns", d.Redaction.Patterns)
	v.SetDefault("redaction.paths", d.Redaction.Paths)
	v.SetDefault("redaction.hash_mode.enabled", d.Redaction.HashMode.Enabled)
	v.SetDefault("redaction.hash_mode.salt", d.Redaction.HashMode.Salt)
	v.SetDefault("pagination.max_pages", d.Pagination.MaxPages)
	v.SetDefault("pagination.page_size", d.Pagination.PageSize)
}

// Load builds the config from an already initialized viper instance
// (config file, EC2BLOCKS_* environment and defaults merged).
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode system config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads the system configuration from path.
// If the file does not exist, returns DefaultConfig().
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component could honor.
func (c *Config) Validate() error {
	if c.Pagination.MaxPages < 0 {
		return fmt.Errorf("pagination.max_pages must not be negative, got %d", c.Pagination.MaxPages)
	}
	if c.Pagination.PageSize < 0 {
		return fmt.Errorf("pagination.page_size must not be negative, got %d", c.Pagination.PageSize)
	}
	return nil
}

// RedactorConfig converts the redaction section for redaction.New.
func (c *Config) RedactorConfig() redaction.Config {
	return redaction.Config{
		Patterns: c.Redaction.Patterns,
		Paths:    c.Redaction.Paths,
		HashMode: c.Redaction.HashMode.Enabled,
		Salt:     c.Redaction.HashMode.Salt,
	}
}
