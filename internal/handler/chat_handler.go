package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"legal-ai-analyzer/internal/domain"
	apperrors "legal-ai-analyzer/pkg/errors"
)

// ChatHandler serves conversational questions about an uploaded document.
type ChatHandler struct {
	service domain.ChatService
	logger  domain.Logger
}

func NewChatHandler(service domain.ChatService, logger domain.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// Chat resolves the document handle and returns the model's reply. Unknown
// handles are a 404; the caller-supplied history is forwarded untouched.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, apperrors.NewValidationError("invalid JSON body", err.Error()))
		return
	}
	if req.DocumentID == "" || strings.TrimSpace(req.Message) == "" {
		writeAppError(w, apperrors.NewValidationError("document_id and message are required"))
		return
	}

	reply, err := h.service.Chat(r.Context(), req.DocumentID, req.Message, req.History)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			writeAppError(w, apperrors.NewNotFoundError("document not found, upload it first"))
			return
		}
		h.logger.Error("Chat request failed", err, "document_id", req.DocumentID)
		writeAppError(w, apperrors.NewInternalError("failed to process chat request", err))
		return
	}

	writeJSON(w, http.StatusOK, domain.ChatResponse{Reply: reply})
}
