package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"legal-ai-analyzer/internal/domain"
	apperrors "legal-ai-analyzer/pkg/errors"
)

// DocumentHandler handles document uploads for the conversational flow.
type DocumentHandler struct {
	store  domain.SessionStore
	config domain.Config
	logger domain.Logger
}

func NewDocumentHandler(store domain.SessionStore, config domain.Config, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Upload accepts a multipart PDF or plain text file and stores it in memory
// under a fresh document handle.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.GetMaxFileSize())
	if err := r.ParseMultipartForm(h.config.GetMaxFileSize()); err != nil {
		writeAppError(w, apperrors.NewValidationError("invalid multipart request", err.Error()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, apperrors.NewValidationError("missing file field"))
		return
	}
	defer file.Close()

	contentType, err := resolveContentType(header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		h.logger.Warn("Rejected upload", "filename", header.Filename, "declared_type", header.Header.Get("Content-Type"))
		writeAppError(w, apperrors.NewValidationError("invalid file type, only PDF and plain text files are accepted"))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, apperrors.NewInternalError("failed to read uploaded file", err))
		return
	}

	doc, err := h.store.Put(header.Filename, contentType, content)
	if err != nil {
		writeAppError(w, apperrors.NewInternalError("failed to store document", err))
		return
	}

	h.logger.Info("Document uploaded", "document_id", doc.ID, "filename", doc.Filename, "content_type", doc.ContentType, "size", len(content))
	writeJSON(w, http.StatusOK, domain.UploadResponse{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
	})
}

// resolveContentType normalizes the declared multipart content type, falling
// back to the filename extension when the part header is generic or absent.
func resolveContentType(declared, filename string) (string, error) {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			switch mediaType {
			case domain.ContentTypePDF:
				return domain.ContentTypePDF, nil
			case domain.ContentTypeText:
				return domain.ContentTypeText, nil
			case "application/octet-stream":
				// generic; decide by extension below
			default:
				return "", domain.ErrInvalidFileType
			}
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return domain.ContentTypePDF, nil
	case ".txt":
		return domain.ContentTypeText, nil
	}
	return "", domain.ErrInvalidFileType
}
