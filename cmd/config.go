package cmd

import (
	"fmt"

	"github.com/tmakkonen/pdfmerge/pkg/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage merge configuration",
	Long: `Manage merge configuration settings.

Configuration is stored in a JSON file in your user configuration directory (~/.pdfmerge/config.json).
You can list all settings, get specific values, or set new values.

Available commands:
  list  - List all configuration settings
  get   - Get a specific setting
  set   - Set a specific setting

Examples:
  pdfmerge config list                              # List all settings
  pdfmerge config get merge_engine                  # Show the configured engine
  pdfmerge config set merge_engine pdfkit           # Switch to the pdfkit engine
  pdfmerge config set default_output_name out.pdf   # Change the default output name
  pdfmerge config set max_rename_attempts 50        # Raise the rename budget`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "list":
			listConfig()
		case "get":
			if len(args) < 2 {
				fmt.Println("Error: 'get' command requires a key name")
				fmt.Println("Usage: pdfmerge config get <key>")
				return
			}
			getConfig(args[1])
		case "set":
			if len(args) < 3 {
				fmt.Println("Error: 'set' command requires a key and value")
				fmt.Println("Usage: pdfmerge config set <key> <value>")
				return
			}
			setConfig(args[1], args[2])
		default:
			fmt.Printf("Error: Unknown config command '%s'\n", args[0])
			fmt.Println("Available commands: list, get, set")
		}
	},
}

// listConfig lists all configuration settings
func listConfig() {
	fmt.Println("🛠️  Merge Configuration")
	fmt.Println("=======================")

	// Load current config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Error loading configuration: %v\n", err)
		return
	}

	// Show config file location
	configPath, _ := config.GetConfigFilePath()
	fmt.Printf("📁 Config file: %s\n\n", configPath)

	// Display settings
	fmt.Println("🛠️  Settings:")
	fmt.Printf("  %-22s = %s\n", "default_output_name", cfg.DefaultOutputName)
	fmt.Printf("  %-22s = %d\n", "max_rename_attempts", cfg.MaxRenameAttempts)
	fmt.Printf("  %-22s = %s\n", "merge_engine", cfg.MergeEngine)
	fmt.Printf("  %-22s = %d\n", "compression_level", cfg.CompressionLevel)
	fmt.Printf("  %-22s = %s\n", "validation_mode", cfg.ValidationMode)

	fmt.Println("\n💡 Tip: Use 'pdfmerge config get <key>' to get specific values")
	fmt.Println("💡 Tip: Use 'pdfmerge config set <key> <value>' to change settings")
	fmt.Println("💡 Note: Log level and verbosity are runtime-only (flags or environment)")
}

// getConfig gets a specific configuration value
func getConfig(key string) {
	value, err := config.GetConfigValue(key)
	if err != nil {
		fmt.Printf("❌ Error getting config value '%s': %v\n", key, err)
		return
	}

	fmt.Printf("📝 %s = %v\n", key, value)
}

// setConfig sets a specific configuration value
func setConfig(key, value string) {
	err := config.SetConfigValue(key, value)
	if err != nil {
		fmt.Printf("❌ Error setting config value '%s': %v\n", key, err)
		return
	}

	fmt.Printf("✅ Successfully set %s = %v\n", key, value)
}

// configListCmd represents the 'config list' command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration settings",
	Run: func(cmd *cobra.Command, args []string) {
		listConfig()
	},
}

// configGetCmd represents the 'config get' command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		getConfig(args[0])
	},
}

// configSetCmd represents the 'config set' command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a specific configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setConfig(args[0], args[1])
	},
}

func init() {
	// Add config command to root
	rootCmd.AddCommand(configCmd)

	// Add subcommands to config
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
