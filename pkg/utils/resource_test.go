package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmakkonen/pdfmerge/pkg/logger"
)

func newTestGuard() *CleanupGuard {
	return NewCleanupGuard(logger.NewLogger("error", false))
}

func TestRollback_UncommittedGuardedFile_Removed(t *testing.T) {
	path := writeTestFile(t, "partial.pdf", []byte("partial"))
	guard := newTestGuard()
	guard.Guard(path)

	require.NoError(t, guard.Rollback())

	assert.NoFileExists(t, path)
}

func TestRollback_CommittedGuard_LeavesFile(t *testing.T) {
	path := writeTestFile(t, "merged.pdf", minimalPDFContent)
	guard := newTestGuard()
	guard.Guard(path)
	guard.Commit()

	require.NoError(t, guard.Rollback())

	assert.FileExists(t, path)
}

func TestRollback_GuardedPathNeverCreated_Succeeds(t *testing.T) {
	guard := newTestGuard()
	guard.Guard(filepath.Join(t.TempDir(), "never-written.pdf"))

	assert.NoError(t, guard.Rollback())
}

func TestRollback_CleanupFuncsRunBeforeFileRemoval(t *testing.T) {
	path := writeTestFile(t, "partial.pdf", []byte("partial"))
	guard := newTestGuard()
	guard.Guard(path)

	var sawFileDuringCleanup bool
	guard.RegisterCleanupFunc(func() error {
		_, err := os.Stat(path)
		sawFileDuringCleanup = err == nil
		return nil
	})

	require.NoError(t, guard.Rollback())

	assert.True(t, sawFileDuringCleanup)
	assert.NoFileExists(t, path)
}

func TestRollback_FailingCleanupFunc_StillRemovesFiles(t *testing.T) {
	path := writeTestFile(t, "partial.pdf", []byte("partial"))
	guard := newTestGuard()
	guard.Guard(path)
	guard.RegisterCleanupFunc(func() error {
		return errors.New("cleanup blew up")
	})

	err := guard.Rollback()

	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestWithRollback_FnFails_RemovesGuardedFileAndReturnsError(t *testing.T) {
	path := writeTestFile(t, "partial.pdf", []byte("partial"))
	guard := newTestGuard()
	guard.Guard(path)

	opErr := errors.New("merge failed")
	err := guard.WithRollback(func() error { return opErr })

	assert.Equal(t, opErr, err)
	assert.NoFileExists(t, path)
}

func TestWithRollback_FnSucceeds_CommitsAndKeepsFile(t *testing.T) {
	path := writeTestFile(t, "merged.pdf", minimalPDFContent)
	guard := newTestGuard()
	guard.Guard(path)

	require.NoError(t, guard.WithRollback(func() error { return nil }))

	assert.FileExists(t, path)

	// A later rollback must not undo a committed operation
	require.NoError(t, guard.Rollback())
	assert.FileExists(t, path)
}
