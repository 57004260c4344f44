package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	OllamaURL         string
	OllamaModel       string
	OllamaTimeout     time.Duration
	TesseractDataPath string
	MaxFileSize       int64
	DocumentTTL       time.Duration
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	ollamaURL := os.Getenv("OLLAMA_URL")
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}

	ollamaModel := os.Getenv("OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama2"
	}

	timeout := 30
	if v, err := strconv.Atoi(os.Getenv("OLLAMA_TIMEOUT_SECONDS")); err == nil && v > 0 {
		timeout = v
	}

	ttlHours := 24
	if v, err := strconv.Atoi(os.Getenv("DOCUMENT_TTL_HOURS")); err == nil && v > 0 {
		ttlHours = v
	}

	maxFileSizeMB := 10
	if v, err := strconv.Atoi(os.Getenv("MAX_FILE_SIZE_MB")); err == nil && v > 0 {
		maxFileSizeMB = v
	}

	return &Config{
		ServerPort:        serverPort,
		OllamaURL:         ollamaURL,
		OllamaModel:       ollamaModel,
		OllamaTimeout:     time.Duration(timeout) * time.Second,
		TesseractDataPath: os.Getenv("TESSDATA_PREFIX"),
		MaxFileSize:       int64(maxFileSizeMB) * 1024 * 1024,
		DocumentTTL:       time.Duration(ttlHours) * time.Hour,
	}
}
