package config

import (
	"os"
	"strconv"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/types"
)

// ApplyEnvOverrides applies environment variable overrides on top of the
// given configuration and returns it
func ApplyEnvOverrides(config *Config) *Config {
	if value := os.Getenv(constants.EnvOutputName); value != "" {
		config.DefaultOutputName = value
	}
	if value := os.Getenv(constants.EnvMaxRenameAttempts); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			config.MaxRenameAttempts = intVal
		}
	}
	if value := os.Getenv(constants.EnvEngine); value != "" {
		config.MergeEngine = types.MergeEngine(value)
	}
	if value := os.Getenv(constants.EnvCompression); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			config.CompressionLevel = intVal
		}
	}
	if value := os.Getenv(constants.EnvValidationMode); value != "" {
		config.ValidationMode = types.ValidationMode(value)
	}
	if value := os.Getenv(constants.EnvLogLevel); value != "" {
		config.LogLevel = value
	}
	if value := os.Getenv(constants.EnvVerbose); value != "" {
		config.EnableVerbose = value == "true" || value == "1" || value == "yes"
	}

	return config
}
