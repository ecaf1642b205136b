package domain

import "time"

// Accepted upload content types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain"
)

// Document is an uploaded file held in memory for the lifetime of the
// process. Content is never mutated after storage; re-uploading the same
// file produces a new handle.
type Document struct {
	ID          string
	Filename    string
	ContentType string
	Content     []byte
	UploadedAt  time.Time
}

// UploadResponse is the payload returned by the upload endpoint.
type UploadResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
}

// AnalyzeResponse is the payload returned by the one-shot analysis endpoint.
// Extraction and provider failures are embedded in Analysis as descriptive
// strings rather than surfaced as request errors.
type AnalyzeResponse struct {
	Filename string `json:"filename"`
	Analysis string `json:"analysis"`
}
