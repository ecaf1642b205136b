package domain

import "errors"

// Domain errors
var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrModelOverloaded    = errors.New("model service overloaded")
	ErrEmptyModelResponse = errors.New("empty response from model")
	ErrInvalidFileType    = errors.New("invalid file type")
)
