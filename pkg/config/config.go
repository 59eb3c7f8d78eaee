package config

import (
	"fmt"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/types"
)

// Default values for runtime settings
const (
	DefaultLogLevel      = "info"
	DefaultEnableVerbose = false
)

// Config holds application configuration
type Config struct {
	// Persisted settings
	DefaultOutputName string               `json:"default_output_name"`
	MaxRenameAttempts int                  `json:"max_rename_attempts"`
	MergeEngine       types.MergeEngine    `json:"merge_engine"`
	CompressionLevel  int                  `json:"compression_level"`
	ValidationMode    types.ValidationMode `json:"validation_mode"`

	// Runtime settings (not persisted to file)
	LogLevel      string `json:"-"`
	EnableVerbose bool   `json:"-"`
}

// NewConfig creates a configuration with built-in defaults
func NewConfig() *Config {
	return &Config{
		DefaultOutputName: constants.DefaultMergeOutputFileName,
		MaxRenameAttempts: constants.DefaultMaxRenameAttempts,
		MergeEngine:       types.MergeEnginePdfcpu,
		CompressionLevel:  constants.DefaultCompressionLevel,
		ValidationMode:    types.ValidationModeRelaxed,
		LogLevel:          DefaultLogLevel,
		EnableVerbose:     DefaultEnableVerbose,
	}
}

// DefaultConfig returns the configuration by loading from file or creating default
func DefaultConfig() *Config {
	// Try to load config from file first
	config, err := LoadConfig()
	if err != nil {
		// If loading fails, fall back to built-in defaults
		fmt.Printf("Warning: Failed to load config file, using built-in defaults: %v\n", err)
		return NewConfig()
	}

	return config
}

// LoadConfigWithEnvOverrides loads config from file and applies environment
// variable overrides
func LoadConfigWithEnvOverrides() *Config {
	return ApplyEnvOverrides(DefaultConfig())
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validator := NewConfigValidator()
	return validator.Validate(c)
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	return &Config{
		DefaultOutputName: c.DefaultOutputName,
		MaxRenameAttempts: c.MaxRenameAttempts,
		MergeEngine:       c.MergeEngine,
		CompressionLevel:  c.CompressionLevel,
		ValidationMode:    c.ValidationMode,
		LogLevel:          c.LogLevel,
		EnableVerbose:     c.EnableVerbose,
	}
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Engine: %s, DefaultOutputName: %s, MaxRenameAttempts: %d, LogLevel: %s, Verbose: %v}",
		c.MergeEngine, c.DefaultOutputName, c.MaxRenameAttempts, c.LogLevel, c.EnableVerbose)
}
