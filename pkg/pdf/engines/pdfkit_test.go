package engines

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/ir"
	"github.com/wudi/pdfkit/ir/semantic"
	"github.com/wudi/pdfkit/writer"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/logger"
	"github.com/tmakkonen/pdfmerge/pkg/utils"
)

func newTestPdfkitEngine() *PdfkitEngine {
	return NewPdfkitEngine(constants.DefaultCompressionLevel, logger.NewLogger("error", false))
}

// testPage builds a minimal page whose width doubles as a marker
func testPage(width float64) *semantic.Page {
	return &semantic.Page{
		MediaBox: semantic.Rectangle{URX: width, URY: 842},
		Contents: []semantic.ContentStream{
			{
				Operations: []semantic.Operation{
					{Operator: "q"},
					{Operator: "Q"},
				},
			},
		},
	}
}

// writePDFFixture generates a real PDF file with the given number of pages
func writePDFFixture(t *testing.T, path string, pageCount int) {
	t.Helper()

	b := builder.NewBuilder()
	for i := 0; i < pageCount; i++ {
		b.AddPage(testPage(595))
	}
	doc, err := b.Build()
	require.NoError(t, err)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	cfg := writer.Config{Version: writer.PDF17}
	require.NoError(t, writer.NewWriter().Write(context.Background(), doc, f, cfg))
}

func TestNewPdfkitEngine_CompressionOutOfRange_FallsBackToDefault(t *testing.T) {
	log := logger.NewLogger("error", false)

	assert.Equal(t, constants.DefaultCompressionLevel, NewPdfkitEngine(-1, log).compression)
	assert.Equal(t, constants.DefaultCompressionLevel, NewPdfkitEngine(constants.MaxCompressionLevel+1, log).compression)
	assert.Equal(t, 3, NewPdfkitEngine(3, log).compression)
}

func TestPdfkitEngine_NameAndDescription(t *testing.T) {
	engine := newTestPdfkitEngine()

	assert.Equal(t, "pdfkit", engine.Name())
	assert.Contains(t, engine.GetDescription(), "pdfkit")
}

func TestBuildMergedDocument_PreservesInputOrder(t *testing.T) {
	docA := &semantic.Document{Pages: []*semantic.Page{testPage(100), testPage(200)}}
	docB := &semantic.Document{Pages: []*semantic.Page{testPage(300)}}

	merged, err := buildMergedDocument([]*semantic.Document{docA, docB})

	require.NoError(t, err)
	require.Len(t, merged.Pages, 3)
	assert.Equal(t, float64(100), merged.Pages[0].MediaBox.URX)
	assert.Equal(t, float64(200), merged.Pages[1].MediaBox.URX)
	assert.Equal(t, float64(300), merged.Pages[2].MediaBox.URX)
}

func TestBuildMergedDocument_ReindexesPages(t *testing.T) {
	pageA := testPage(100)
	pageA.Index = 7
	pageB := testPage(200)
	pageB.Index = 0

	merged, err := buildMergedDocument([]*semantic.Document{
		{Pages: []*semantic.Page{pageA}},
		{Pages: []*semantic.Page{pageB}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, merged.Pages[0].Index)
	assert.Equal(t, 1, merged.Pages[1].Index)
}

func TestBuildMergedDocument_NoDocuments_EmptyDocument(t *testing.T) {
	merged, err := buildMergedDocument(nil)

	require.NoError(t, err)
	assert.Empty(t, merged.Pages)
}

func TestBuildMergedDocument_ZeroPageInput_ContributesNothing(t *testing.T) {
	empty := &semantic.Document{}
	single := &semantic.Document{Pages: []*semantic.Page{testPage(100)}}

	merged, err := buildMergedDocument([]*semantic.Document{empty, single, empty})

	require.NoError(t, err)
	require.Len(t, merged.Pages, 1)
	assert.Equal(t, float64(100), merged.Pages[0].MediaBox.URX)
}

func TestMerge_GeneratedInputs_AllPagesInOutput(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.pdf")
	second := filepath.Join(dir, "second.pdf")
	writePDFFixture(t, first, 2)
	writePDFFixture(t, second, 1)
	out := filepath.Join(dir, "merged.pdf")
	engine := newTestPdfkitEngine()

	err := engine.Merge(context.Background(), []string{first, second}, out)

	require.NoError(t, err)
	require.FileExists(t, out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	doc, err := ir.NewDefault().Parse(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, doc.Pages, 3)
}

func TestMerge_SingleInput_Succeeds(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "only.pdf")
	writePDFFixture(t, input, 1)
	out := filepath.Join(dir, "merged.pdf")

	err := newTestPdfkitEngine().Merge(context.Background(), []string{input}, out)

	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestMerge_GarbageInput_ParseErrorAndNoOutput(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not a pdf at all"), 0o644))
	out := filepath.Join(dir, "merged.pdf")

	err := newTestPdfkitEngine().Merge(context.Background(), []string{garbage}, out)

	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeParse, utils.GetErrorType(err))
	assert.NoFileExists(t, out)
}

func TestMerge_MissingInput_IOErrorAndNoOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "merged.pdf")

	err := newTestPdfkitEngine().Merge(context.Background(), []string{filepath.Join(dir, "gone.pdf")}, out)

	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeIO, utils.GetErrorType(err))
	assert.NoFileExists(t, out)
}

func TestMerge_BadSecondInput_NoOutputCreated(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pdf")
	writePDFFixture(t, good, 1)
	bad := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("broken"), 0o644))
	out := filepath.Join(dir, "merged.pdf")

	err := newTestPdfkitEngine().Merge(context.Background(), []string{good, bad}, out)

	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestMerge_CancelledContext_AbortsBeforeOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.pdf")
	writePDFFixture(t, input, 1)
	out := filepath.Join(dir, "merged.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestPdfkitEngine().Merge(ctx, []string{input}, out)

	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, out)
}
