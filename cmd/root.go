package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/tmakkonen/pdfmerge/pkg/config"
	"github.com/tmakkonen/pdfmerge/pkg/core"
	"github.com/tmakkonen/pdfmerge/pkg/interfaces"
	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/types"
	"github.com/tmakkonen/pdfmerge/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	outfilePath string
	engineName  string
	logLevel    string
	verbose     bool
	showVersion bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config    *config.Config
	logger    *logger.Logger
	processor interfaces.MergeProcessor
}

// NewAppHandler creates an application handler
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// MergeFiles is the main entry point for merging
func (h *AppHandler) MergeFiles(inputFiles []string) error {
	// Initialize configuration and components
	if err := h.initialize(); err != nil {
		return err
	}

	h.displayRequest(inputFiles)

	// Run the merge
	result, err := h.processor.ProcessMerge(context.Background(), inputFiles, outfilePath)
	if err != nil {
		return err
	}

	// Display results
	h.displayResults(result)
	return nil
}

// initialize initializes application components
func (h *AppHandler) initialize() error {
	// Load configuration with environment overrides
	h.config = config.LoadConfigWithEnvOverrides()
	h.applyCommandLineOverrides()

	// Validate configuration
	if err := h.config.Validate(); err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "configuration validation failed")
	}

	// Create logger and processor
	h.logger = logger.NewLogger(h.config.LogLevel, h.config.EnableVerbose)
	h.processor = core.NewMergeProcessor(h.config, h.logger)

	return nil
}

// applyCommandLineOverrides applies command line parameter overrides
func (h *AppHandler) applyCommandLineOverrides() {
	if engineName != "" {
		h.config.MergeEngine = types.MergeEngine(engineName)
	}

	if logLevel != "" {
		h.config.LogLevel = logLevel
	}

	// Apply verbose parameter override
	if verbose {
		h.config.EnableVerbose = true
	}
}

// displayRequest shows the parsed merge request
func (h *AppHandler) displayRequest(inputFiles []string) {
	h.logger.Info("Merging %d input files:", len(inputFiles))
	for i, f := range inputFiles {
		h.logger.Info("  %d. %s", i+1, f)
	}
	if outfilePath != "" {
		h.logger.Info("Requested output: %s", outfilePath)
	}
}

// displayResults displays merge results
func (h *AppHandler) displayResults(result *interfaces.MergeResult) {
	fmt.Printf("✅ PDF files merged successfully\n")
	fmt.Printf("📄 Output file: %s\n", result.OutputPath)

	if result.RenameAttempts > 0 {
		fmt.Printf("⚠️  Requested name was taken, renamed after %d attempt(s)\n", result.RenameAttempts)
	}

	if result.PageCount > 0 {
		fmt.Printf("📊 Total pages: %d\n", result.PageCount)
	}
	fmt.Printf("🔧 Engine used: %s\n", result.EngineUsed)
	fmt.Printf("⏱️  Processing time: %dms\n", result.ProcessTime)
}

// exitWithError reports a failure on standard error and exits non-zero
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "❌ Error (%s): %v\n", utils.GetErrorType(err), err)
	os.Exit(1)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdfmerge [input_files...]",
	Short: "A CLI tool for merging multiple PDF files into a single document",
	Long: `A CLI tool for merging multiple PDF files into a single document, with collision-safe output naming.

Inputs are appended in the order they are given, each document's pages keeping their original order. When the requested output name is already taken, a numeric suffix is inserted after the first part of the filename (merged.pdf becomes merged1.pdf, archive.tar.gz becomes archive1.tar.gz) until a free name is found.

Merge Engines:
- pdfcpu: validates all inputs, then merges whole files (default)
- pdfkit: parses every input and rebuilds one document page by page

Output Path Handling:
- A path ending in a separator, or naming an existing directory, places the default filename inside that directory
- Missing output directories are created
- Nothing is written if any input fails to validate or parse

Examples:
  pdfmerge a.pdf b.pdf                      # Merge into merged.pdf (merged1.pdf if taken)
  pdfmerge a.pdf b.pdf -o combined.pdf      # Merge into combined.pdf
  pdfmerge a.pdf b.pdf -o reports/          # Merge into reports/merged.pdf
  pdfmerge chapter*.pdf -o book/full.pdf    # Shell-expanded input list
  pdfmerge a.pdf b.pdf --engine pdfkit      # Use the page-based engine
  pdfmerge a.pdf b.pdf -v                   # Verbose progress output`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Handle version flag
		if showVersion {
			fmt.Printf("pdfmerge %s\n", version)
			return
		}

		if len(args) == 0 {
			cmd.Help()
			return
		}

		handler := NewAppHandler()
		if err := handler.MergeFiles(args); err != nil {
			exitWithError(err)
		}
	},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add flags to root command
	rootCmd.Flags().StringVarP(&outfilePath, "outfile", "o", "",
		"Output file path or directory (default: merged.pdf, renamed if taken)")
	rootCmd.Flags().StringVar(&engineName, "engine", "",
		"Merge engine (pdfcpu, pdfkit)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"Show version information")
}
