// Package engines provides the built-in PDF merge engines.
package engines

import (
	"context"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/types"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

// PdfcpuEngine merges PDFs with the pdfcpu library. Cross-reference
// rewriting and page tree stitching are delegated to pdfcpu, which works
// on whole files
type PdfcpuEngine struct {
	logger         *logger.Logger
	validationMode types.ValidationMode
}

// NewPdfcpuEngine creates a pdfcpu-backed merge engine
func NewPdfcpuEngine(validationMode types.ValidationMode, log *logger.Logger) *PdfcpuEngine {
	return &PdfcpuEngine{
		logger:         log,
		validationMode: validationMode,
	}
}

// Name returns the engine identifier
func (e *PdfcpuEngine) Name() string {
	return string(types.MergeEnginePdfcpu)
}

// GetDescription returns a human-readable engine description
func (e *PdfcpuEngine) GetDescription() string {
	return "File-based merge using the pdfcpu library"
}

// Merge validates every input and concatenates them, in order, into
// outputPath. Validation happens before anything is written, and a failed
// merge removes whatever pdfcpu may have created at the output path
func (e *PdfcpuEngine) Merge(ctx context.Context, inputPaths []string, outputPath string) error {
	conf := e.configuration()

	e.logger.Debug("Validating %d input files with pdfcpu", len(inputPaths))
	if err := api.ValidateFiles(inputPaths, conf); err != nil {
		return utils.WrapError(err, utils.ErrorTypeParse, "input validation failed")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	e.logger.Debug("Merging %d files into %s", len(inputPaths), outputPath)
	if err := api.MergeCreateFile(inputPaths, outputPath, false, conf); err != nil {
		// pdfcpu creates the output file before appending, so a failed
		// merge can leave a partial file behind
		if removeErr := os.Remove(outputPath); removeErr != nil && !os.IsNotExist(removeErr) {
			e.logger.Warn("Failed to remove partial output %s: %v", outputPath, removeErr)
		}
		return utils.WrapError(err, utils.ErrorTypeMerge, "pdfcpu merge failed")
	}

	return nil
}

// configuration builds the pdfcpu configuration for this engine
func (e *PdfcpuEngine) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	switch e.validationMode {
	case types.ValidationModeStrict:
		conf.ValidationMode = model.ValidationStrict
	default:
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}

// PageCount returns the number of pages in a PDF file
func PageCount(filePath string) (int, error) {
	count, err := api.PageCountFile(filePath)
	if err != nil {
		return 0, utils.WrapError(err, utils.ErrorTypeParse, fmt.Sprintf("cannot count pages in %s", filePath))
	}
	return count, nil
}
