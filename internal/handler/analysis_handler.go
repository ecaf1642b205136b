package handler

import (
	"io"
	"net/http"
	"strings"

	"legal-ai-analyzer/internal/domain"
	apperrors "legal-ai-analyzer/pkg/errors"
)

// AnalysisHandler serves the legacy one-shot analysis endpoint.
type AnalysisHandler struct {
	service domain.AnalysisService
	config  domain.Config
	logger  domain.Logger
}

func NewAnalysisHandler(service domain.AnalysisService, config domain.Config, logger domain.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		config:  config,
		logger:  logger,
	}
}

// Analyze accepts a multipart PDF file and returns a structured legal
// analysis. Extraction and provider failures come back embedded in the
// analysis body with a 200, not as request errors.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
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

	if !strings.HasSuffix(header.Filename, ".pdf") {
		writeAppError(w, apperrors.NewValidationError("Invalid file type. Please upload a PDF."))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, apperrors.NewInternalError("failed to read uploaded file", err))
		return
	}

	h.logger.Info("Analyzing document", "filename", header.Filename, "size", len(content))
	analysis, err := h.service.Analyze(r.Context(), content)
	if err != nil {
		writeAppError(w, apperrors.NewInternalError("an unexpected error occurred", err))
		return
	}

	writeJSON(w, http.StatusOK, domain.AnalyzeResponse{
		Filename: header.Filename,
		Analysis: analysis,
	})
}
