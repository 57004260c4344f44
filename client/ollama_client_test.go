package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaGenerateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama2", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "What is the revenue?")

		json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Model:    req.Model,
			Response: "Revenue is 1,500.",
			Done:     true,
		})
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL)
	answer, err := c.Generate(context.Background(), "What is the revenue?")

	assert.NoError(t, err)
	assert.Equal(t, "Revenue is 1,500.", answer)
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL)
	_, err := c.Generate(context.Background(), "anything")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestGenerateUnreachable(t *testing.T) {
	c := NewOllamaClient("http://127.0.0.1:1", WithOllamaTimeout(200*time.Millisecond))

	_, err := c.Generate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestWithOllamaModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollamaGenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "mistral:7b", req.Model)
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "ok", Done: true})
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL, WithOllamaModel("mistral:7b"))
	_, err := c.Generate(context.Background(), "prompt")
	assert.NoError(t, err)
}
