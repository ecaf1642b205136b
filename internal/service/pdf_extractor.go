package service

import (
	"fmt"
	"strings"

	"legal-ai-analyzer/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor extracts plain text from PDF bytes.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF text extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// Extract returns the concatenated text of all pages, separated by newlines.
// Pages that fail to parse or contain no text are skipped rather than
// treated as errors. An empty result with a nil error means the document
// parsed but yielded no text at all.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	e.logger.Debug("PDF text extracted", "pages", numPages, "pages_with_text", len(pages))
	return strings.Join(pages, "\n"), nil
}
