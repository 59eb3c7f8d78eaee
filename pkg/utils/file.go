package utils

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmakkonen/pdfmerge/pkg/constants"
	"github.com/tmakkonen/pdfmerge/pkg/types"
)

// Extension and MIME type sets used for input screening
var (
	PDFExtensions = map[string]bool{
		"pdf": true,
	}

	PDFMimeTypes = []string{
		"application/pdf", "application/x-pdf",
	}
)

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// PathExists reports whether path names any existing filesystem entry
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GetFileInfo extracts basic information about a file
func GetFileInfo(filePath string) (*types.FileInfo, error) {
	// Get file stats
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	// Get file extension
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))

	// Sniff MIME type from the leading bytes
	mimeType, err := detectMimeType(filePath)
	if err != nil {
		return nil, fmt.Errorf("error detecting MIME type: %w", err)
	}

	return &types.FileInfo{
		Path:      filePath,
		Extension: extension,
		MimeType:  mimeType,
		Size:      stat.Size(),
	}, nil
}

// IsPDFFile determines if a file is a PDF based on extension and MIME type
func IsPDFFile(extension, mimeType string) bool {
	// Check by extension
	if PDFExtensions[strings.ToLower(extension)] {
		return true
	}

	// Check by MIME type
	for _, pattern := range PDFMimeTypes {
		if strings.HasPrefix(mimeType, pattern) {
			return true
		}
	}

	return false
}

// HasPDFHeader reports whether the file starts with a PDF header marker.
// The marker is allowed anywhere within the first kilobyte, matching how
// lenient readers locate it
func HasPDFHeader(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 1024)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("error reading file header: %w", err)
	}

	return bytes.Contains(buf[:n], []byte(constants.PDFMagicPrefix)), nil
}

// ValidateInputFile screens a merge input before it reaches an engine.
// It verifies the file exists, is a regular file, looks like a PDF and
// stays within the supported size limit
func ValidateInputFile(filePath string) (*types.FileInfo, error) {
	stat, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, NewNotFoundError(fmt.Sprintf("input file does not exist: %s", filePath), err)
	}
	if err != nil {
		return nil, NewIOError(fmt.Sprintf("cannot access input file: %s", filePath), err)
	}
	if stat.IsDir() {
		return nil, NewValidationError(fmt.Sprintf("input path is a directory, not a file: %s", filePath), nil)
	}
	if !stat.Mode().IsRegular() {
		return nil, NewValidationError(fmt.Sprintf("input path is not a regular file: %s", filePath), nil)
	}
	if stat.Size() == 0 {
		return nil, NewValidationError(fmt.Sprintf("input file is empty: %s", filePath), nil)
	}
	if stat.Size() > constants.MaxFileSize {
		return nil, NewValidationError(
			fmt.Sprintf("input file exceeds the %d MB size limit: %s",
				constants.MaxFileSize/(1024*1024), filePath), nil)
	}

	info, err := GetFileInfo(filePath)
	if err != nil {
		return nil, NewIOError(fmt.Sprintf("cannot inspect input file: %s", filePath), err)
	}

	if !IsPDFFile(info.Extension, info.MimeType) {
		// Extension and sniffed MIME type both missed, fall back to a
		// deeper header scan before rejecting
		hasHeader, headerErr := HasPDFHeader(filePath)
		if headerErr != nil {
			return nil, NewIOError(fmt.Sprintf("cannot inspect input file: %s", filePath), headerErr)
		}
		if !hasHeader {
			return nil, NewValidationError(fmt.Sprintf("input file is not a PDF: %s", filePath), nil)
		}
	}

	return info, nil
}

// ExceedsWarnSize reports whether a file is large enough to deserve a
// progress warning before merging
func ExceedsWarnSize(size int64) bool {
	return size > constants.WarnFileSizeLimit
}

// detectMimeType sniffs the MIME type from the first bytes of the file
func detectMimeType(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if n == 0 {
		return "application/octet-stream", nil
	}

	return http.DetectContentType(buf[:n]), nil
}
