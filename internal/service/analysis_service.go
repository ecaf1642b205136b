package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legal-ai-analyzer/internal/domain"
)

// User-facing failure messages embedded in result bodies.
const (
	msgNoExtractableText = "Error: Could not extract any text from the PDF. The file may be empty or contain only images."
	msgOverloaded        = "Error: The AI service is currently overloaded or unavailable after multiple retries. Please try again later."
)

// AnalysisService orchestrates the one-shot analysis flow: extract text,
// build the fixed prompt, call the model once (with gateway-level retry).
type AnalysisService struct {
	extractor domain.TextExtractor
	prompts   *PromptBuilder
	gateway   domain.ModelGateway
	logger    domain.Logger
}

func NewAnalysisService(extractor domain.TextExtractor, prompts *PromptBuilder, gateway domain.ModelGateway, logger domain.Logger) *AnalysisService {
	return &AnalysisService{
		extractor: extractor,
		prompts:   prompts,
		gateway:   gateway,
		logger:    logger,
	}
}

// Analyze extracts the document text and asks the model for a structured
// legal analysis. Extraction and provider failures are returned as
// descriptive result strings with a nil error; the model is never called
// when extraction yields no text.
func (s *AnalysisService) Analyze(ctx context.Context, data []byte) (string, error) {
	text, err := s.extractor.Extract(data)
	if err != nil {
		s.logger.Error("Failed to read PDF", err)
		return fmt.Sprintf("Error: Could not read the PDF file. It might be corrupted or in an unsupported format. Details: %v", err), nil
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Document yielded no extractable text")
		return msgNoExtractableText, nil
	}

	prompt := s.prompts.BuildAnalysisPrompt(text)
	analysis, err := s.gateway.GenerateOnce(ctx, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrModelOverloaded) {
			return msgOverloaded, nil
		}
		s.logger.Error("Model call failed", err)
		return fmt.Sprintf("Error: Failed to get analysis from AI. Details: %v", err), nil
	}

	s.logger.Info("Analysis received", "chars", len(analysis))
	return analysis, nil
}
