package dto

import "errors"

// ChatMessage is one prior exchange in the conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Question string        `json:"question" binding:"required"`
	History  []ChatMessage `json:"history,omitempty"`
}

// Validate performs basic validation on the request
func (r *ChatRequest) Validate() error {
	if r.Question == "" {
		return errors.New("question is required")
	}
	return nil
}
