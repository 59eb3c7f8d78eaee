package types

// MergeEngine identifies the PDF backend that performs the merge
type MergeEngine string

const (
	MergeEnginePdfcpu MergeEngine = "pdfcpu"
	MergeEnginePdfkit MergeEngine = "pdfkit"
)

// ValidationMode controls how strictly the pdfcpu engine validates inputs
type ValidationMode string

const (
	ValidationModeRelaxed ValidationMode = "relaxed"
	ValidationModeStrict  ValidationMode = "strict"
)

// FileInfo contains basic information about a file
type FileInfo struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
}
