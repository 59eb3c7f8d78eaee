package utils

import (
	"fmt"
	"os"
	"sync"

	"github.com/tmakkonen/pdfmerge/pkg/logger"
)

// CleanupGuard tracks files created during a merge so they can be removed
// if the operation fails part way. Guarded paths are released once the
// operation commits, which leaves the finished output in place.
type CleanupGuard struct {
	paths      []string
	cleanupFns []func() error
	committed  bool
	mu         sync.Mutex
	logger     *logger.Logger
}

// NewCleanupGuard creates a new cleanup guard
func NewCleanupGuard(log *logger.Logger) *CleanupGuard {
	return &CleanupGuard{
		paths:      make([]string, 0),
		cleanupFns: make([]func() error, 0),
		logger:     log,
	}
}

// Guard registers a path for removal should the operation fail to commit
func (g *CleanupGuard) Guard(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paths = append(g.paths, path)
	g.logger.Debug("Guarding path against partial writes: %s", path)
}

// RegisterCleanupFunc registers a function to run during rollback
func (g *CleanupGuard) RegisterCleanupFunc(fn func() error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cleanupFns = append(g.cleanupFns, fn)
}

// Commit marks the operation as successful so guarded paths survive
func (g *CleanupGuard) Commit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.committed = true
}

// Rollback removes all guarded paths unless the guard has committed
func (g *CleanupGuard) Rollback() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.committed {
		return nil
	}

	var errors []error

	// Run custom cleanup functions first
	for _, fn := range g.cleanupFns {
		if err := fn(); err != nil {
			errors = append(errors, err)
			g.logger.Warn("Cleanup function failed: %v", err)
		}
	}

	// Remove guarded files
	for _, path := range g.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errors = append(errors, fmt.Errorf("failed to remove %s: %w", path, err))
			g.logger.Warn("Failed to remove partial output: %s, error: %v", path, err)
		} else if err == nil {
			g.logger.Debug("Removed partial output: %s", path)
		}
	}

	// Clear the tracked state
	g.paths = g.paths[:0]
	g.cleanupFns = g.cleanupFns[:0]

	if len(errors) > 0 {
		return fmt.Errorf("rollback failed with %d errors: %v", len(errors), errors)
	}

	return nil
}

// WithRollback executes a function and rolls back guarded paths if it
// returns an error, committing otherwise
func (g *CleanupGuard) WithRollback(fn func() error) error {
	if err := fn(); err != nil {
		if rbErr := g.Rollback(); rbErr != nil {
			g.logger.Warn("Rollback after failure reported errors: %v", rbErr)
		}
		return err
	}
	g.Commit()
	return nil
}
