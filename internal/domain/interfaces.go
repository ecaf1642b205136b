package domain

import "context"

// TextExtractor derives plain text from raw document bytes. An empty string
// with a nil error means the document parsed fine but contained no
// extractable text (e.g. a scanned image PDF); that is a business outcome,
// not an error.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// ModelGateway owns the single outbound channel to the generative model
// provider.
type ModelGateway interface {
	// GenerateOnce submits a single-turn prompt. Rate-limit failures are
	// retried with backoff; exhaustion returns ErrModelOverloaded.
	GenerateOnce(ctx context.Context, prompt string) (string, error)

	// GenerateChatTurn opens a fresh chat seeded with the given history and
	// submits the document plus the new message as one turn. Single attempt,
	// no retry.
	GenerateChatTurn(ctx context.Context, history []ConversationTurn, doc *Document, message string) (string, error)
}

// SessionStore keeps uploaded documents for the lifetime of the process.
type SessionStore interface {
	Put(filename, contentType string, content []byte) (*Document, error)
	// Get returns ErrDocumentNotFound for unknown handles.
	Get(id string) (*Document, error)
}

// AnalysisService produces a one-shot structured analysis of a document.
type AnalysisService interface {
	Analyze(ctx context.Context, data []byte) (string, error)
}

// ChatService answers a follow-up question about a stored document.
type ChatService interface {
	Chat(ctx context.Context, documentID, message string, history []HistoryItem) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetGoogleProject() string
	GetGoogleLocation() string
}
