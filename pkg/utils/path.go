package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
)

// PathUtils provides cross-platform path utilities
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// JoinPath safely joins path components using the platform-appropriate separator
func (p *PathUtils) JoinPath(elements ...string) string {
	return filepath.Join(elements...)
}

// NormalizePath normalizes a path for the current platform
func (p *PathUtils) NormalizePath(path string) string {
	// Clean the path and convert to platform-appropriate separators
	cleaned := filepath.Clean(path)

	// On Windows, ensure proper drive letter formatting
	if constants.IsWindows() && len(cleaned) >= 2 && cleaned[1] == ':' {
		// Ensure drive letter is uppercase
		if cleaned[0] >= 'a' && cleaned[0] <= 'z' {
			cleaned = strings.ToUpper(string(cleaned[0])) + cleaned[1:]
		}
	}

	return cleaned
}

// GetAbsolutePath returns the absolute path, handling cross-platform differences
func (p *PathUtils) GetAbsolutePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return p.NormalizePath(absPath), nil
}

// EnsureDir creates a directory if it doesn't exist, with appropriate permissions
func (p *PathUtils) EnsureDir(dirPath string) error {
	normalizedPath := p.NormalizePath(dirPath)
	return os.MkdirAll(normalizedPath, constants.DefaultDirPermission)
}

// IsDirectoryPath reports whether a requested path denotes a directory, either
// by ending in a path separator or by naming an existing directory on disk
func (p *PathUtils) IsDirectoryPath(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return true
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return true
	}
	return false
}

// ExpandPath expands environment variables and user home directory in path
func (p *PathUtils) ExpandPath(path string) (string, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(path)

	// Handle home directory expansion
	if strings.HasPrefix(expanded, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}

		if expanded == "~" {
			expanded = homeDir
		} else if strings.HasPrefix(expanded, "~/") {
			expanded = filepath.Join(homeDir, expanded[2:])
		}
	}

	return expanded, nil
}

// ValidatePath validates that a path is safe and accessible
func (p *PathUtils) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	// Normalize the path
	normalizedPath := p.NormalizePath(path)
	platformConfig := constants.GetPlatformConfig()

	// Check for invalid characters (platform-specific)
	baseName := filepath.Base(normalizedPath)
	for _, char := range platformConfig.InvalidNameChars {
		if strings.Contains(baseName, char) {
			return fmt.Errorf("path contains invalid character %q: %s", char, normalizedPath)
		}
	}

	// Check for reserved names on Windows
	baseNameUpper := strings.ToUpper(strings.TrimSuffix(baseName, filepath.Ext(baseName)))
	for _, reserved := range platformConfig.ReservedNames {
		if baseNameUpper == reserved {
			return fmt.Errorf("path uses reserved name '%s': %s", reserved, normalizedPath)
		}
	}

	return nil
}

// SanitizeFileName sanitizes a filename for the current platform
func (p *PathUtils) SanitizeFileName(filename string) string {
	sanitized := filename

	if constants.IsWindows() {
		// Replace invalid characters for Windows
		invalidChars := []string{"<", ">", ":", "\"", "/", "\\", "|", "?", "*"}
		for _, char := range invalidChars {
			sanitized = strings.ReplaceAll(sanitized, char, "_")
		}

		// Remove trailing dots and spaces (invalid on Windows)
		sanitized = strings.TrimRight(sanitized, ". ")
	} else {
		// For Unix-like systems, mainly avoid / and null characters
		sanitized = strings.ReplaceAll(sanitized, "/", "_")
		sanitized = strings.ReplaceAll(sanitized, "\x00", "_")
	}

	// Ensure filename is not empty
	if strings.TrimSpace(sanitized) == "" {
		sanitized = "unnamed_file"
	}

	return sanitized
}

// Global instance for easy access
var DefaultPathUtils = NewPathUtils()

// Convenience functions that use the default instance
func JoinPath(elements ...string) string {
	return DefaultPathUtils.JoinPath(elements...)
}

func NormalizePath(path string) string {
	return DefaultPathUtils.NormalizePath(path)
}

func GetAbsolutePath(path string) (string, error) {
	return DefaultPathUtils.GetAbsolutePath(path)
}

func EnsureDir(dirPath string) error {
	return DefaultPathUtils.EnsureDir(dirPath)
}

func IsDirectoryPath(path string) bool {
	return DefaultPathUtils.IsDirectoryPath(path)
}

func ExpandPath(path string) (string, error) {
	return DefaultPathUtils.ExpandPath(path)
}

func ValidatePath(path string) error {
	return DefaultPathUtils.ValidatePath(path)
}

func SanitizeFileName(filename string) string {
	return DefaultPathUtils.SanitizeFileName(filename)
}
