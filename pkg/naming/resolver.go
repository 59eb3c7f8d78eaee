// Package naming resolves requested output paths into concrete,
// collision-free file paths using a bounded numeric-suffix scheme.
package naming

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

// Resolution is the outcome of resolving a requested output path
type Resolution struct {
	Path     string // concrete file path, free at resolution time
	Attempts int    // number of rename attempts performed
}

// Resolver turns a requested output path into a path that does not collide
// with an existing filesystem entry. Resolution is a best-effort guarantee,
// nothing reserves the name between the check and the eventual write.
type Resolver struct {
	defaultFileName string
	maxAttempts     int
	logger          *logger.Logger
}

// NewResolver creates a resolver with the given default output filename and
// rename attempt budget
func NewResolver(defaultFileName string, maxAttempts int, log *logger.Logger) *Resolver {
	if defaultFileName == "" {
		defaultFileName = constants.DefaultMergeOutputFileName
	}
	if maxAttempts <= 0 {
		maxAttempts = constants.DefaultMaxRenameAttempts
	}

	return &Resolver{
		defaultFileName: defaultFileName,
		maxAttempts:     maxAttempts,
		logger:          log,
	}
}

// Resolve computes a concrete output path for the requested one.
//
// A request that denotes a directory, either by a trailing separator or by
// naming an existing directory, has the default filename appended first.
// When the working path is already free it is returned unchanged. Otherwise
// candidates are probed by appending the attempt number to the first
// dot-delimited segment of the filename, so "merged.pdf" becomes
// "merged1.pdf" and "archive.tar.gz" becomes "archive1.tar.gz". When the
// attempt budget runs out, Resolve returns a RenameAttemptsExceededError
// carrying the attempt count and the originally requested path.
func (r *Resolver) Resolve(requestedPath string) (*Resolution, error) {
	working := requestedPath
	if working == "" || utils.IsDirectoryPath(working) {
		working = filepath.Join(working, r.defaultFileName)
		r.logger.Debug("Requested path denotes a directory, using: %s", working)
	}

	if !utils.PathExists(working) {
		return &Resolution{Path: working, Attempts: 0}, nil
	}

	dir := filepath.Dir(working)
	segments := strings.Split(filepath.Base(working), ".")
	base := segments[0]
	rest := segments[1:]

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		name := base + strconv.Itoa(attempt)
		if len(rest) > 0 {
			name = name + "." + strings.Join(rest, ".")
		}

		candidate := filepath.Join(dir, name)
		if !utils.PathExists(candidate) {
			r.logger.Debug("Output path resolved after %d rename attempts: %s", attempt, candidate)
			return &Resolution{Path: candidate, Attempts: attempt}, nil
		}
	}

	return nil, utils.NewRenameAttemptsExceededError(r.maxAttempts+1, r.maxAttempts, requestedPath)
}
