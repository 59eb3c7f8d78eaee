package engines

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/types"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

func newTestPdfcpuEngine(mode types.ValidationMode) *PdfcpuEngine {
	return NewPdfcpuEngine(mode, logger.NewLogger("error", false))
}

func TestPdfcpuEngine_NameAndDescription(t *testing.T) {
	engine := newTestPdfcpuEngine(types.ValidationModeRelaxed)

	assert.Equal(t, "pdfcpu", engine.Name())
	assert.Contains(t, engine.GetDescription(), "pdfcpu")
}

func TestPdfcpuEngine_Configuration_RelaxedMode(t *testing.T) {
	conf := newTestPdfcpuEngine(types.ValidationModeRelaxed).configuration()

	assert.Equal(t, model.ValidationRelaxed, conf.ValidationMode)
}

func TestPdfcpuEngine_Configuration_StrictMode(t *testing.T) {
	conf := newTestPdfcpuEngine(types.ValidationModeStrict).configuration()

	assert.Equal(t, model.ValidationStrict, conf.ValidationMode)
}

func TestPdfcpuEngine_Configuration_UnknownMode_FallsBackToRelaxed(t *testing.T) {
	conf := newTestPdfcpuEngine("weird").configuration()

	assert.Equal(t, model.ValidationRelaxed, conf.ValidationMode)
}

func TestPdfcpuMerge_GarbageInput_FailsBeforeOutputExists(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a pdf"), 0o644))
	out := filepath.Join(dir, "merged.pdf")

	err := newTestPdfcpuEngine(types.ValidationModeRelaxed).Merge(context.Background(), []string{garbage}, out)

	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeParse, utils.GetErrorType(err))
	assert.NoFileExists(t, out)
}

func TestPdfcpuMerge_MissingInput_FailsBeforeOutputExists(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "merged.pdf")

	err := newTestPdfcpuEngine(types.ValidationModeRelaxed).Merge(
		context.Background(), []string{filepath.Join(dir, "gone.pdf")}, out)

	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestPageCount_MissingFile_Fails(t *testing.T) {
	_, err := PageCount(filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeParse, utils.GetErrorType(err))
}

func TestPageCount_NonPDFFile_Fails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	_, err := PageCount(path)

	assert.Error(t, err)
}
