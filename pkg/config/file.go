package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/types"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

const (
	ConfigFileName = "config.json"
	AppDirName     = ".pdfmerge"
)

// ConfigFile represents the JSON configuration file structure
type ConfigFile struct {
	DefaultOutputName string `json:"default_output_name"`
	MaxRenameAttempts int    `json:"max_rename_attempts"`
	MergeEngine       string `json:"merge_engine"`
	CompressionLevel  int    `json:"compression_level"`
	ValidationMode    string `json:"validation_mode"`
}

// GetConfigDir returns the user configuration directory (~/.pdfmerge)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to get user home directory")
	}

	appConfigDir := filepath.Join(homeDir, AppDirName)
	return appConfigDir, nil
}

// GetConfigFilePath returns the full path to the configuration file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads configuration from file or creates default if not exists
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to get config file path")
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config file
		return createDefaultConfigFile(configPath)
	}

	// Load existing config file
	return loadConfigFromFile(configPath)
}

// createDefaultConfigFile creates a configuration file with the built-in
// defaults
func createDefaultConfigFile(configPath string) (*Config, error) {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, constants.DefaultDirPermission); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	configFile := configToConfigFile(NewConfig())

	// Save to file
	if err := saveConfigFile(configPath, configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to save default config file")
	}

	fmt.Printf("✅ Created default configuration file: %s\n", configPath)

	return configFileToConfig(configFile), nil
}

// loadConfigFromFile loads configuration from an existing file
func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to read config file")
	}

	var configFile ConfigFile
	if err := json.Unmarshal(data, &configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeParse, "failed to parse config file")
	}

	return configFileToConfig(&configFile), nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	// Make sure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), constants.DefaultDirPermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	configFile := configToConfigFile(config)
	return saveConfigFile(configPath, configFile)
}

// saveConfigFile saves ConfigFile to disk
func saveConfigFile(configPath string, configFile *ConfigFile) error {
	data, err := json.MarshalIndent(configFile, "", "  ")
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeConfig, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, constants.DefaultFilePermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to write config file")
	}

	return nil
}

// configFileToConfig converts ConfigFile to Config. Missing fields in a
// hand-edited file fall back to the built-in defaults
func configFileToConfig(cf *ConfigFile) *Config {
	config := NewConfig()

	if cf.DefaultOutputName != "" {
		config.DefaultOutputName = cf.DefaultOutputName
	}
	if cf.MaxRenameAttempts > 0 {
		config.MaxRenameAttempts = cf.MaxRenameAttempts
	}
	if cf.MergeEngine != "" {
		config.MergeEngine = types.MergeEngine(cf.MergeEngine)
	}
	if cf.CompressionLevel >= constants.MinCompressionLevel && cf.CompressionLevel <= constants.MaxCompressionLevel {
		config.CompressionLevel = cf.CompressionLevel
	}
	if cf.ValidationMode != "" {
		config.ValidationMode = types.ValidationMode(cf.ValidationMode)
	}

	return config
}

// configToConfigFile converts Config to ConfigFile
func configToConfigFile(c *Config) *ConfigFile {
	return &ConfigFile{
		DefaultOutputName: c.DefaultOutputName,
		MaxRenameAttempts: c.MaxRenameAttempts,
		MergeEngine:       string(c.MergeEngine),
		CompressionLevel:  c.CompressionLevel,
		ValidationMode:    string(c.ValidationMode),
	}
}

// GetConfigValue gets a specific configuration value by key
func GetConfigValue(key string) (interface{}, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	switch key {
	case "default_output_name":
		return config.DefaultOutputName, nil
	case "max_rename_attempts":
		return config.MaxRenameAttempts, nil
	case "merge_engine":
		return string(config.MergeEngine), nil
	case "compression_level":
		return config.CompressionLevel, nil
	case "validation_mode":
		return string(config.ValidationMode), nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}
}

// SetConfigValue sets a specific configuration value by key. The updated
// configuration is validated before it is persisted
func SetConfigValue(key string, value interface{}) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "default_output_name":
		v, ok := value.(string)
		if !ok {
			return utils.NewValidationError("default_output_name must be a string", nil)
		}
		config.DefaultOutputName = v
	case "max_rename_attempts":
		intVal, err := toIntValue(value)
		if err != nil {
			return utils.NewValidationError("max_rename_attempts must be an integer", err)
		}
		config.MaxRenameAttempts = intVal
	case "merge_engine":
		v, ok := value.(string)
		if !ok {
			return utils.NewValidationError("merge_engine must be a string", nil)
		}
		config.MergeEngine = types.MergeEngine(v)
	case "compression_level":
		intVal, err := toIntValue(value)
		if err != nil {
			return utils.NewValidationError("compression_level must be an integer", err)
		}
		config.CompressionLevel = intVal
	case "validation_mode":
		v, ok := value.(string)
		if !ok {
			return utils.NewValidationError("validation_mode must be a string", nil)
		}
		config.ValidationMode = types.ValidationMode(v)
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	// Save the updated config
	return SaveConfig(config)
}

// toIntValue accepts both native ints and numeric strings
func toIntValue(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported value type %T", value)
	}
}

// ListConfigKeys returns all available configuration keys
func ListConfigKeys() []string {
	return []string{
		"default_output_name",
		"max_rename_attempts",
		"merge_engine",
		"compression_level",
		"validation_mode",
	}
}
