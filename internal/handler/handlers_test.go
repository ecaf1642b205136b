package handler

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"

	"legal-ai-analyzer/internal/domain"
)

// Shared mock implementations for handler package tests.

type testConfig struct {
	maxFileSize int64
}

func (c *testConfig) GetServerPort() string     { return "8080" }
func (c *testConfig) GetMaxFileSize() int64     { return c.maxFileSize }
func (c *testConfig) GetLogLevel() string       { return "error" }
func (c *testConfig) GetGeminiAPIKey() string   { return "test-key" }
func (c *testConfig) GetGeminiModel() string    { return "test-model" }
func (c *testConfig) GetGoogleProject() string  { return "" }
func (c *testConfig) GetGoogleLocation() string { return "us-central1" }

func newTestConfig() domain.Config {
	return &testConfig{maxFileSize: 10 * 1024 * 1024}
}

type MockSessionStore struct {
	documents map[string]*domain.Document
	nextID    int
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{documents: make(map[string]*domain.Document)}
}

func (m *MockSessionStore) Put(filename, contentType string, content []byte) (*domain.Document, error) {
	m.nextID++
	doc := &domain.Document{
		ID:          fmt.Sprintf("doc-%d", m.nextID),
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	}
	m.documents[doc.ID] = doc
	return doc, nil
}

func (m *MockSessionStore) Get(id string) (*domain.Document, error) {
	if doc, exists := m.documents[id]; exists {
		return doc, nil
	}
	return nil, domain.ErrDocumentNotFound
}

type MockAnalysisService struct {
	result    string
	err       error
	calls     int
	lastBytes []byte
}

func (m *MockAnalysisService) Analyze(ctx context.Context, data []byte) (string, error) {
	m.calls++
	m.lastBytes = data
	return m.result, m.err
}

type MockChatService struct {
	reply       string
	err         error
	calls       int
	lastID      string
	lastMessage string
	lastHistory []domain.HistoryItem
}

func (m *MockChatService) Chat(ctx context.Context, documentID, message string, history []domain.HistoryItem) (string, error) {
	m.calls++
	m.lastID = documentID
	m.lastMessage = message
	m.lastHistory = history
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// multipartRequest builds a multipart POST with a single file part.
func multipartRequest(url, filename, contentType string, content []byte) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}
