package core

import (
	"fmt"
	"sort"

	"github.com/tmakkonen/pdfmerge/pkg/config"
	"github.com/tmakkonen/pdfmerge/pkg/interfaces"
	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/pdf/engines"
	"github.com/tmakkonen/pdfmerge/pkg/types"
)

// DefaultEngineFactory implements EngineFactory
type DefaultEngineFactory struct {
	engines map[types.MergeEngine]interfaces.MergeEngine
	config  *config.Config
	logger  *logger.Logger
}

// NewEngineFactory creates a new engine factory with the built-in engines
// registered
func NewEngineFactory(cfg *config.Config, log *logger.Logger) interfaces.EngineFactory {
	factory := &DefaultEngineFactory{
		engines: make(map[types.MergeEngine]interfaces.MergeEngine),
		config:  cfg,
		logger:  log,
	}

	factory.registerDefaultEngines()

	return factory
}

// CreateEngine returns the engine registered under the given name
func (f *DefaultEngineFactory) CreateEngine(name types.MergeEngine) (interfaces.MergeEngine, error) {
	engine, exists := f.engines[name]
	if !exists {
		return nil, fmt.Errorf("unknown merge engine %q, available engines: %v", name, f.ListEngines())
	}

	f.logger.Debug("Selected merge engine: %s", engine.Name())
	return engine, nil
}

// RegisterEngine registers a new engine
func (f *DefaultEngineFactory) RegisterEngine(name types.MergeEngine, engine interfaces.MergeEngine) {
	f.engines[name] = engine
	f.logger.Debug("Registered merge engine: %s", name)
}

// ListEngines returns the registered engine names in stable order
func (f *DefaultEngineFactory) ListEngines() []types.MergeEngine {
	names := make([]types.MergeEngine, 0, len(f.engines))
	for name := range f.engines {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// registerDefaultEngines registers the built-in engines
func (f *DefaultEngineFactory) registerDefaultEngines() {
	f.RegisterEngine(types.MergeEnginePdfcpu, engines.NewPdfcpuEngine(f.config.ValidationMode, f.logger))
	f.RegisterEngine(types.MergeEnginePdfkit, engines.NewPdfkitEngine(f.config.CompressionLevel, f.logger))

	f.logger.Debug("Registered %d merge engines: %v", len(f.engines), f.ListEngines())
}
