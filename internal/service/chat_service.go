package service

import (
	"context"
	"errors"
	"fmt"

	"legal-ai-analyzer/internal/domain"
)

// ChatService orchestrates the conversational flow: resolve the document
// handle, thread the caller-supplied history through unchanged, submit the
// raw document bytes alongside the grounded message.
type ChatService struct {
	store   domain.SessionStore
	prompts *PromptBuilder
	gateway domain.ModelGateway
	logger  domain.Logger
}

func NewChatService(store domain.SessionStore, prompts *PromptBuilder, gateway domain.ModelGateway, logger domain.Logger) *ChatService {
	return &ChatService{
		store:   store,
		prompts: prompts,
		gateway: gateway,
		logger:  logger,
	}
}

// Chat answers a follow-up question about a stored document. The handle is
// resolved before any remote call: an unknown handle returns
// domain.ErrDocumentNotFound without contacting the provider. Provider
// failures are embedded in the reply string, matching the analysis path.
func (s *ChatService) Chat(ctx context.Context, documentID, message string, history []domain.HistoryItem) (string, error) {
	doc, err := s.store.Get(documentID)
	if err != nil {
		return "", err
	}

	turns := s.prompts.NormalizeHistory(history)
	grounded := s.prompts.BuildChatMessage(message)

	reply, err := s.gateway.GenerateChatTurn(ctx, turns, doc, grounded)
	if err != nil {
		if errors.Is(err, domain.ErrModelOverloaded) {
			return msgOverloaded, nil
		}
		s.logger.Error("Model call failed", err, "document_id", documentID)
		return fmt.Sprintf("Error: Failed to get a reply from AI. Details: %v", err), nil
	}

	s.logger.Info("Chat reply received", "document_id", documentID, "history_turns", len(history))
	return reply, nil
}
