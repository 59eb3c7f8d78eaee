package config

import (
	"fmt"
	"strings"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/types"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

// ConfigValidator validates application configuration
type ConfigValidator struct{}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate checks the whole configuration and reports every violation
func (v *ConfigValidator) Validate(c *Config) error {
	var errors []string

	if err := v.validateMergeEngine(c.MergeEngine); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateValidationMode(c.ValidationMode); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateOutputName(c.DefaultOutputName); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateNumericValues(c); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateLogLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return utils.NewValidationError("configuration validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errors, "; ")))
	}

	return nil
}

// validateMergeEngine checks the configured merge engine
func (v *ConfigValidator) validateMergeEngine(engine types.MergeEngine) error {
	validEngines := []types.MergeEngine{
		types.MergeEnginePdfcpu,
		types.MergeEnginePdfkit,
	}

	for _, valid := range validEngines {
		if engine == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid merge engine: %s", engine)
}

// validateValidationMode checks the configured PDF validation mode
func (v *ConfigValidator) validateValidationMode(mode types.ValidationMode) error {
	validModes := []types.ValidationMode{
		types.ValidationModeRelaxed,
		types.ValidationModeStrict,
	}

	for _, valid := range validModes {
		if mode == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid validation mode: %s", mode)
}

// validateOutputName checks the default output filename
func (v *ConfigValidator) validateOutputName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("default output name must not be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("default output name must be a bare filename, got: %s", name)
	}
	if err := utils.ValidatePath(name); err != nil {
		return fmt.Errorf("invalid default output name: %v", err)
	}

	return nil
}

// validateNumericValues checks the numeric parameters
func (v *ConfigValidator) validateNumericValues(c *Config) error {
	if c.MaxRenameAttempts < 1 {
		return fmt.Errorf("max rename attempts must be at least 1")
	}
	if c.MaxRenameAttempts > 1000 {
		return fmt.Errorf("max rename attempts should not exceed 1000")
	}
	if c.CompressionLevel < constants.MinCompressionLevel || c.CompressionLevel > constants.MaxCompressionLevel {
		return fmt.Errorf("compression level must be between %d and %d",
			constants.MinCompressionLevel, constants.MaxCompressionLevel)
	}

	return nil
}

// validateLogLevel checks the log level
func (v *ConfigValidator) validateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	for _, valid := range validLevels {
		if strings.ToLower(level) == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid log level: %s", level)
}
