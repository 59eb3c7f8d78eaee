package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tmakkonen/pdfmerge/pkg/config"
	"github.com/tmakkonen/pdfmerge/pkg/interfaces"
	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/naming"
	"github.com/tmakkonen/pdfmerge/pkg/pdf/engines"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

// DefaultMergeProcessor implements MergeProcessor. It screens the inputs,
// resolves a collision-free output path, prepares the output directory and
// delegates the page work to the configured engine
type DefaultMergeProcessor struct {
	config   *config.Config
	logger   *logger.Logger
	factory  interfaces.EngineFactory
	resolver *naming.Resolver
}

// NewMergeProcessor creates a processor with the default engine factory
func NewMergeProcessor(cfg *config.Config, log *logger.Logger) *DefaultMergeProcessor {
	return NewMergeProcessorWithFactory(cfg, log, NewEngineFactory(cfg, log))
}

// NewMergeProcessorWithFactory creates a processor with a custom engine
// factory
func NewMergeProcessorWithFactory(cfg *config.Config, log *logger.Logger, factory interfaces.EngineFactory) *DefaultMergeProcessor {
	return &DefaultMergeProcessor{
		config:   cfg,
		logger:   log,
		factory:  factory,
		resolver: naming.NewResolver(cfg.DefaultOutputName, cfg.MaxRenameAttempts, log),
	}
}

// ProcessMerge validates the inputs, resolves the output path and runs the
// configured merge engine. No output file survives a failed merge
func (p *DefaultMergeProcessor) ProcessMerge(ctx context.Context, inputPaths []string, requestedOutput string) (*interfaces.MergeResult, error) {
	startTime := time.Now()

	if len(inputPaths) == 0 {
		return nil, utils.NewValidationError("no input files given", nil)
	}

	p.logger.Debug("Validating %d input files", len(inputPaths))

	// Screen all inputs before anything touches the output location
	totalBytes, err := p.validateInputs(inputPaths)
	if err != nil {
		return nil, err
	}

	resolution, err := p.resolver.Resolve(requestedOutput)
	if err != nil {
		return nil, err
	}
	if resolution.Attempts > 0 {
		p.logger.Info("Output name already taken, writing to %s instead", resolution.Path)
	}

	// Dir returns "." for bare filenames, so an output path with no
	// directory component means the current directory
	outputDir := filepath.Dir(resolution.Path)
	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO,
			fmt.Sprintf("cannot create output directory: %s", outputDir))
	}

	engine, err := p.factory.CreateEngine(p.config.MergeEngine)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeConfig, "engine selection failed")
	}

	p.logger.Info("Merging %d files with %s", len(inputPaths), engine.Name())

	guard := utils.NewCleanupGuard(p.logger)
	guard.Guard(resolution.Path)
	if err := guard.WithRollback(func() error {
		return engine.Merge(ctx, inputPaths, resolution.Path)
	}); err != nil {
		return nil, err
	}

	result := &interfaces.MergeResult{
		OutputPath:      resolution.Path,
		RequestedPath:   requestedOutput,
		RenameAttempts:  resolution.Attempts,
		InputFiles:      inputPaths,
		TotalInputBytes: totalBytes,
		EngineUsed:      engine.Name(),
		ProcessTime:     time.Since(startTime).Milliseconds(),
	}

	// Page count is informational only
	if count, countErr := engines.PageCount(resolution.Path); countErr == nil {
		result.PageCount = count
	} else {
		p.logger.Warn("Could not determine merged page count: %v", countErr)
	}

	p.logger.Progress("✅", "Merge completed in %dms: %s", result.ProcessTime, result.OutputPath)

	return result, nil
}

// validateInputs screens every input file and returns their combined size
func (p *DefaultMergeProcessor) validateInputs(inputPaths []string) (int64, error) {
	var totalBytes int64

	for _, path := range inputPaths {
		info, err := utils.ValidateInputFile(path)
		if err != nil {
			return 0, err
		}
		if utils.ExceedsWarnSize(info.Size) {
			p.logger.Warn("Large input file (%d MB), merging may take longer: %s",
				info.Size/(1024*1024), path)
		}
		totalBytes += info.Size
	}

	return totalBytes, nil
}
