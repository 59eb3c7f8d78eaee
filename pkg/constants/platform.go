package constants

import (
	"runtime"
)

// Platform-specific constants
var (
	// Current operating system
	CurrentOS = runtime.GOOS

	// Platform-specific path separators (though filepath.Join should be used)
	PathSeparator = getPathSeparator()

	// Platform-specific line endings
	LineEnding = getLineEnding()
)

// Platform-specific filename rules
type PlatformConfig struct {
	InvalidNameChars []string
	ReservedNames    []string
}

// GetPlatformConfig returns platform-specific filename validation rules
func GetPlatformConfig() *PlatformConfig {
	switch runtime.GOOS {
	case "windows":
		return &PlatformConfig{
			InvalidNameChars: []string{"<", ">", ":", "\"", "|", "?", "*"},
			ReservedNames: []string{
				"CON", "PRN", "AUX", "NUL",
				"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
				"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
			},
		}
	default: // Unix-like systems only forbid the separator and NUL inside names
		return &PlatformConfig{
			InvalidNameChars: []string{"\x00"},
			ReservedNames:    nil,
		}
	}
}

// getPathSeparator returns the path separator for the current platform
func getPathSeparator() string {
	if runtime.GOOS == "windows" {
		return "\\"
	}
	return "/"
}

// getLineEnding returns the line ending for the current platform
func getLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// IsUnixLike returns true if running on a Unix-like system (macOS, Linux, etc.)
func IsUnixLike() bool {
	return runtime.GOOS != "windows"
}

// GetDefaultTempDir returns the platform-appropriate temporary directory
func GetDefaultTempDir() string {
	switch runtime.GOOS {
	case "windows":
		return "C:\\Windows\\Temp"
	default:
		return "/tmp"
	}
}
