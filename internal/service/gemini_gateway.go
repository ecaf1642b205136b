package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"legal-ai-analyzer/internal/domain"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	maxGenerateAttempts = 3
	initialRetryDelay   = 5 * time.Second
)

// GeminiGateway is the single outbound channel to the Gemini API.
type GeminiGateway struct {
	client *genai.Client
	model  string
	logger domain.Logger

	// sleep suspends the current request between retry attempts without
	// blocking other requests being served. Replaced in tests to assert the
	// backoff schedule without wall-clock waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGeminiGateway creates the gateway with a shared Gemini client. The API
// key is the required provider credential.
func NewGeminiGateway(ctx context.Context, cfg domain.Config, logger domain.Logger) (*GeminiGateway, error) {
	client, err := genai.NewClient(ctx, cfg.GetGoogleProject(), cfg.GetGoogleLocation(), option.WithAPIKey(cfg.GetGeminiAPIKey()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGateway{
		client: client,
		model:  cfg.GetGeminiModel(),
		logger: logger,
		sleep:  sleepContext,
	}, nil
}

// Close releases the underlying client connection.
func (g *GeminiGateway) Close() error {
	return g.client.Close()
}

// GenerateOnce submits a single-turn prompt. Rate-limit failures are retried
// with exponential backoff (5s, then 10s) for up to three total attempts;
// any other failure aborts immediately with the provider's detail. When all
// attempts hit the rate limit, domain.ErrModelOverloaded is returned instead
// of the raw provider error.
func (g *GeminiGateway) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	return g.generateWithRetry(ctx, func(ctx context.Context) (string, error) {
		model := g.client.GenerativeModel(g.model)
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		return responseText(resp)
	})
}

// GenerateChatTurn opens a fresh chat seeded with the given history, then
// submits the stored document bytes and the new message as a single turn.
// No retry here: chat callers are interactive and should see the failure
// immediately rather than wait out a backoff schedule.
func (g *GeminiGateway) GenerateChatTurn(ctx context.Context, history []domain.ConversationTurn, doc *domain.Document, message string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	chat := model.StartChat()
	for _, turn := range history {
		role := "model"
		if turn.Role == domain.RoleUser {
			role = "user"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx,
		genai.Blob{MIMEType: doc.ContentType, Data: doc.Content},
		genai.Text(message),
	)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	return responseText(resp)
}

// generateWithRetry runs the bounded retry state machine: attempt, classify,
// back off on rate limits only, abort on anything else.
func (g *GeminiGateway) generateWithRetry(ctx context.Context, attempt func(ctx context.Context) (string, error)) (string, error) {
	delay := initialRetryDelay
	for i := 0; i < maxGenerateAttempts; i++ {
		text, err := attempt(ctx)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", fmt.Errorf("model request failed: %w", err)
		}
		if i == maxGenerateAttempts-1 {
			break
		}
		g.logger.Warn("Rate limit hit, retrying", "delay", delay.String(), "attempt", i+1, "max_attempts", maxGenerateAttempts)
		if err := g.sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
	}
	return "", domain.ErrModelOverloaded
}

// isRateLimited reports whether the provider error signals rate limiting or
// overload (HTTP 429 / gRPC ResourceExhausted). The string fallback covers
// errors that arrive flattened through intermediate wrapping.
func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 429 {
		return true
	}
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	return strings.Contains(err.Error(), "429")
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrEmptyModelResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
