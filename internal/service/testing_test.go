package service

import (
	"context"

	"legal-ai-analyzer/internal/domain"
)

// testLogger discards all output.
type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Warn(msg string, fields ...interface{})             {}

// mockExtractor returns canned extraction results.
type mockExtractor struct {
	text  string
	err   error
	calls int
}

func (m *mockExtractor) Extract(data []byte) (string, error) {
	m.calls++
	return m.text, m.err
}

// mockGateway records calls and returns canned responses.
type mockGateway struct {
	onceResp string
	onceErr  error
	chatResp string
	chatErr  error

	onceCalls   int
	chatCalls   int
	lastPrompt  string
	lastHistory []domain.ConversationTurn
	lastDoc     *domain.Document
	lastMessage string
}

func (m *mockGateway) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	m.onceCalls++
	m.lastPrompt = prompt
	return m.onceResp, m.onceErr
}

func (m *mockGateway) GenerateChatTurn(ctx context.Context, history []domain.ConversationTurn, doc *domain.Document, message string) (string, error) {
	m.chatCalls++
	m.lastHistory = history
	m.lastDoc = doc
	m.lastMessage = message
	return m.chatResp, m.chatErr
}
