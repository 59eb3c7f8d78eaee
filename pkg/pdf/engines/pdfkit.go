package engines

import (
	"context"
	"fmt"
	"os"

	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/ir"
	"github.com/wudi/pdfkit/ir/semantic"
	"github.com/wudi/pdfkit/writer"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/types"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

// PdfkitEngine merges PDFs page by page with the pdfkit library. Every
// input is parsed into a semantic document before any output is created,
// so a bad input aborts the merge without touching the filesystem
type PdfkitEngine struct {
	logger      *logger.Logger
	compression int
}

// NewPdfkitEngine creates a pdfkit-backed merge engine
func NewPdfkitEngine(compression int, log *logger.Logger) *PdfkitEngine {
	if compression < constants.MinCompressionLevel || compression > constants.MaxCompressionLevel {
		compression = constants.DefaultCompressionLevel
	}

	return &PdfkitEngine{
		logger:      log,
		compression: compression,
	}
}

// Name returns the engine identifier
func (e *PdfkitEngine) Name() string {
	return string(types.MergeEnginePdfkit)
}

// GetDescription returns a human-readable engine description
func (e *PdfkitEngine) GetDescription() string {
	return "Page-based merge using the pdfkit library"
}

// Merge parses every input into memory, collects their pages in input
// order and writes a single document to outputPath
func (e *PdfkitEngine) Merge(ctx context.Context, inputPaths []string, outputPath string) error {
	docs, err := e.parseInputs(ctx, inputPaths)
	if err != nil {
		return err
	}

	doc, err := buildMergedDocument(docs)
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeMerge, "building merged document failed")
	}

	return e.writeDocument(ctx, doc, outputPath)
}

// parseInputs parses each input sequentially, in list order
func (e *PdfkitEngine) parseInputs(ctx context.Context, inputPaths []string) ([]*semantic.Document, error) {
	pipeline := ir.NewDefault()
	docs := make([]*semantic.Document, 0, len(inputPaths))

	for _, path := range inputPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := e.parseFile(ctx, pipeline, path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// parseFile keeps the file handle scoped to a single input
func (e *PdfkitEngine) parseFile(ctx context.Context, pipeline *ir.Pipeline, path string) (*semantic.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.NewIOError(fmt.Sprintf("cannot open input file: %s", path), err)
	}
	defer f.Close()

	e.logger.Debug("Parsing %s", path)
	doc, err := pipeline.Parse(ctx, f)
	if err != nil {
		return nil, utils.NewParseError(fmt.Sprintf("cannot parse input file: %s", path), err)
	}

	return doc, nil
}

// buildMergedDocument appends every page of every document, in order, to a
// fresh builder
func buildMergedDocument(docs []*semantic.Document) (*semantic.Document, error) {
	b := builder.NewBuilder()
	for _, doc := range docs {
		for _, page := range doc.Pages {
			b.AddPage(page)
		}
	}
	return b.Build()
}

// writeDocument writes the merged document, removing the output file if
// the write fails part way
func (e *PdfkitEngine) writeDocument(ctx context.Context, doc *semantic.Document, outputPath string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return utils.NewIOError(fmt.Sprintf("cannot create output file: %s", outputPath), err)
	}

	cfg := writer.Config{
		Version:     writer.PDF17,
		Compression: e.compression,
	}

	e.logger.Debug("Writing merged document to %s", outputPath)
	if err := writer.NewWriter().Write(ctx, doc, out, cfg); err != nil {
		out.Close()
		if removeErr := os.Remove(outputPath); removeErr != nil && !os.IsNotExist(removeErr) {
			e.logger.Warn("Failed to remove partial output %s: %v", outputPath, removeErr)
		}
		return utils.WrapError(err, utils.ErrorTypeMerge, "pdfkit write failed")
	}

	if err := out.Close(); err != nil {
		return utils.NewIOError(fmt.Sprintf("cannot finalize output file: %s", outputPath), err)
	}

	return nil
}
