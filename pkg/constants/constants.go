package constants

// Application constants
const (
	AppName = "pdfmerge"
	// Note: AppVersion is managed via build-time ldflags injection in main.go
	// Use cmd.GetVersionInfo() to get the current version at runtime
)

// Semantic versioning constants
const (
	// Version format components
	VersionFormat    = "v%d.%d.%d"    // Standard semantic version format
	PreReleaseFormat = "v%d.%d.%d-%s" // Version with pre-release identifier
	DevVersionSuffix = "dev"          // Development build suffix

	// Version comparison constants
	VersionMajor = 1 // Current major version
	VersionMinor = 0 // Current minor version
	VersionPatch = 0 // Current patch version
)

// Merge output constants
const (
	// Default output file name, used when -o/--outfile is omitted or names a directory
	DefaultMergeOutputFileName = "merged.pdf"

	// Collision-safe renaming budget
	DefaultMaxRenameAttempts = 20

	// Writer settings for the pdfkit engine
	DefaultCompressionLevel = 9
	MinCompressionLevel     = 0
	MaxCompressionLevel     = 9
)

// File processing constants
const (
	// Default file permissions
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	// Input detection
	PDFExtension   = "pdf"
	PDFMagicPrefix = "%PDF-"
)

// File size limits (in bytes)
const (
	MaxFileSize       = 500 * 1024 * 1024 // 500MB
	WarnFileSizeLimit = 50 * 1024 * 1024  // 50MB
)

// Environment variable names for runtime overrides
const (
	EnvOutputName        = "PDFMERGE_OUTPUT_NAME"
	EnvMaxRenameAttempts = "PDFMERGE_MAX_RENAME_ATTEMPTS"
	EnvEngine            = "PDFMERGE_ENGINE"
	EnvCompression       = "PDFMERGE_COMPRESSION"
	EnvValidationMode    = "PDFMERGE_VALIDATION_MODE"
	EnvLogLevel          = "PDFMERGE_LOG_LEVEL"
	EnvVerbose           = "PDFMERGE_VERBOSE"
)

// Error messages
const (
	ErrInvalidFile      = "invalid or corrupted file"
	ErrNotAPDF          = "not a PDF document"
	ErrPermissionDenied = "permission denied"
)
