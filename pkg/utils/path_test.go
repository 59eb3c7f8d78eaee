package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDirectoryPath_EmptyPath_ReturnsFalse(t *testing.T) {
	assert.False(t, IsDirectoryPath(""))
}

func TestIsDirectoryPath_TrailingSlash_ReturnsTrue(t *testing.T) {
	assert.True(t, IsDirectoryPath("output/"))
	assert.True(t, IsDirectoryPath(filepath.Join("a", "b")+string(os.PathSeparator)))
}

func TestIsDirectoryPath_ExistingDirectory_ReturnsTrue(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsDirectoryPath(dir))
}

func TestIsDirectoryPath_ExistingFile_ReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.False(t, IsDirectoryPath(path))
}

func TestIsDirectoryPath_NonexistentPlainPath_ReturnsFalse(t *testing.T) {
	assert.False(t, IsDirectoryPath(filepath.Join(t.TempDir(), "merged.pdf")))
}

func TestEnsureDir_NestedPath_CreatesAllLevels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingDirectory_Succeeds(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, EnsureDir(dir))
}

func TestNormalizePath_RedundantSegments_Cleaned(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "c"), NormalizePath("a/b/../c"))
	assert.Equal(t, "a", NormalizePath("./a/"))
}

func TestGetAbsolutePath_RelativePath_ReturnsAbsolute(t *testing.T) {
	abs, err := GetAbsolutePath("docs/merged.pdf")

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}

func TestExpandPath_HomePrefix_ExpandsToHomeDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/out.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "out.pdf"), expanded)
}

func TestExpandPath_EnvVariable_Expanded(t *testing.T) {
	t.Setenv("PDFMERGE_TEST_DIR", "/data/pdfs")

	expanded, err := ExpandPath("$PDFMERGE_TEST_DIR/out.pdf")

	require.NoError(t, err)
	assert.Equal(t, "/data/pdfs/out.pdf", expanded)
}

func TestValidatePath_EmptyPath_Fails(t *testing.T) {
	assert.Error(t, ValidatePath(""))
}

func TestValidatePath_NullByte_Fails(t *testing.T) {
	assert.Error(t, ValidatePath("bad\x00name.pdf"))
}

func TestValidatePath_RegularName_Succeeds(t *testing.T) {
	assert.NoError(t, ValidatePath("reports/merged.pdf"))
}

func TestSanitizeFileName_SlashReplaced(t *testing.T) {
	assert.Equal(t, "a_b.pdf", SanitizeFileName("a/b.pdf"))
}

func TestSanitizeFileName_BlankName_Fallback(t *testing.T) {
	assert.Equal(t, "unnamed_file", SanitizeFileName("   "))
}

func TestJoinPath_MultipleElements_Joined(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "c.pdf"), JoinPath("a", "b", "c.pdf"))
}
