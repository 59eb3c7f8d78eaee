package interfaces

import (
	"context"

	"github.com/tmakkonen/pdfmerge/pkg/types"
)

// === Core interfaces ===

// MergeEngine merges an ordered list of PDF inputs into a single output file
type MergeEngine interface {
	// Name returns the engine identifier
	Name() string
	// GetDescription returns a human-readable engine description
	GetDescription() string
	// Merge concatenates the inputs, in order, into outputPath
	Merge(ctx context.Context, inputPaths []string, outputPath string) error
}

// EngineFactory creates and registers merge engines
type EngineFactory interface {
	// CreateEngine returns the engine registered under the given name
	CreateEngine(name types.MergeEngine) (MergeEngine, error)
	// RegisterEngine registers a new engine
	RegisterEngine(name types.MergeEngine, engine MergeEngine)
	// ListEngines returns the registered engine names
	ListEngines() []types.MergeEngine
}

// MergeProcessor drives a complete merge operation
type MergeProcessor interface {
	// ProcessMerge validates inputs, resolves the output path and merges
	ProcessMerge(ctx context.Context, inputPaths []string, requestedOutput string) (*MergeResult, error)
}

// === Data structures ===

// MergeResult describes a finished merge operation
type MergeResult struct {
	OutputPath      string   `json:"output_path"`
	RequestedPath   string   `json:"requested_path"`
	RenameAttempts  int      `json:"rename_attempts"`
	InputFiles      []string `json:"input_files"`
	PageCount       int      `json:"page_count,omitempty"`
	TotalInputBytes int64    `json:"total_input_bytes"`
	EngineUsed      string   `json:"engine_used"`
	ProcessTime     int64    `json:"process_time_ms"`
}
