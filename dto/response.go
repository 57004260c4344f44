package dto

import "errors"

// Custom errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type: only .pdf, .xlsx and .xls are accepted")
	ErrFileTooLarge        = errors.New("file exceeds the configured size limit")
	ErrEmptyDocument       = errors.New("no text could be extracted from the document")
	ErrDocumentNotFound    = errors.New("document not found")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UploadResponse is returned after a document has been processed and stored.
type UploadResponse struct {
	Document DocumentContext `json:"document"`
	Replaced bool            `json:"replaced"`
}

// DocumentListResponse lists the currently stored documents.
type DocumentListResponse struct {
	Documents []DocumentContext `json:"documents"`
	Count     int               `json:"count"`
}

// ChatResponse is the answer to a chat question. Source states whether the
// answer came from a direct metric lookup, the language model, or the
// fallback path.
type ChatResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

const (
	AnswerSourceLookup   = "lookup"
	AnswerSourceLLM      = "llm"
	AnswerSourceFallback = "fallback"
)
