package service

import (
	"sync"
	"time"

	"legal-ai-analyzer/internal/domain"

	"github.com/google/uuid"
)

// MemorySessionStore holds uploaded documents for the lifetime of the
// process. Entries are never mutated or evicted; a restart clears the store.
type MemorySessionStore struct {
	mu        sync.RWMutex
	documents map[string]*domain.Document
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		documents: make(map[string]*domain.Document),
	}
}

// Put stores the document under a fresh random handle. Re-uploading the
// same bytes produces a new handle.
func (s *MemorySessionStore) Put(filename, contentType string, content []byte) (*domain.Document, error) {
	doc := &domain.Document{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
		UploadedAt:  time.Now(),
	}

	s.mu.Lock()
	s.documents[doc.ID] = doc
	s.mu.Unlock()

	return doc, nil
}

// Get resolves a document handle. Unknown handles return
// domain.ErrDocumentNotFound.
func (s *MemorySessionStore) Get(id string) (*domain.Document, error) {
	s.mu.RLock()
	doc, ok := s.documents[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}
