// ABOUTME: Centralized configuration for the transcript RAG engine
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the transcript engine
type Config struct {
	// Model server settings (any OpenAI-compatible endpoint; local Ollama by default)
	BaseURL        string
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Chunking settings
	ChunkTargetWords  int
	ChunkOverlapWords int

	// Retrieval settings
	MaxRetrievalResults int
	SimilarityThreshold float64
	VectorWeight        float64
	LexicalWeight       float64

	// Chat settings
	MaxContextMessages int

	// A/B summary settings
	VariantDelay time.Duration

	// Storage
	DataDir string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:             getEnv("TRANSCRIPTS_BASE_URL", "http://localhost:11434/v1"),
		APIKey:              getEnv("TRANSCRIPTS_API_KEY", os.Getenv("OPENAI_API_KEY")),
		ChatModel:           getEnv("TRANSCRIPTS_CHAT_MODEL", "llama3.1"),
		EmbeddingModel:      getEnv("TRANSCRIPTS_EMBEDDING_MODEL", "nomic-embed-text"),
		Timeout:             getEnvDuration("TRANSCRIPTS_TIMEOUT", 60*time.Second),
		MaxRetries:          getEnvInt("TRANSCRIPTS_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("TRANSCRIPTS_RETRY_DELAY", 2*time.Second),
		ChunkTargetWords:    getEnvInt("TRANSCRIPTS_CHUNK_WORDS", 500),
		ChunkOverlapWords:   getEnvInt("TRANSCRIPTS_CHUNK_OVERLAP", 50),
		MaxRetrievalResults: getEnvInt("TRANSCRIPTS_MAX_RESULTS", 5),
		SimilarityThreshold: getEnvFloat("TRANSCRIPTS_SIMILARITY_THRESHOLD", 0.3),
		VectorWeight:        getEnvFloat("TRANSCRIPTS_VECTOR_WEIGHT", 0.7),
		LexicalWeight:       getEnvFloat("TRANSCRIPTS_LEXICAL_WEIGHT", 0.3),
		MaxContextMessages:  getEnvInt("TRANSCRIPTS_MAX_CONTEXT_MESSAGES", 10),
		VariantDelay:        getEnvDuration("TRANSCRIPTS_VARIANT_DELAY", time.Second),
		DataDir:             getEnv("TRANSCRIPTS_DATA_DIR", ""),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration bounds
func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("TRANSCRIPTS_SIMILARITY_THRESHOLD must be 0-1, got %f", c.SimilarityThreshold)
	}
	if c.VectorWeight < 0 || c.VectorWeight > 1 {
		return fmt.Errorf("TRANSCRIPTS_VECTOR_WEIGHT must be 0-1, got %f", c.VectorWeight)
	}
	if c.LexicalWeight < 0 || c.LexicalWeight > 1 {
		return fmt.Errorf("TRANSCRIPTS_LEXICAL_WEIGHT must be 0-1, got %f", c.LexicalWeight)
	}
	if c.VectorWeight+c.LexicalWeight == 0 {
		return fmt.Errorf("hybrid weights must not both be zero")
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("TRANSCRIPTS_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.ChunkTargetWords <= 0 {
		return fmt.Errorf("TRANSCRIPTS_CHUNK_WORDS must be positive, got %d", c.ChunkTargetWords)
	}
	if c.ChunkOverlapWords < 0 || c.ChunkOverlapWords >= c.ChunkTargetWords {
		return fmt.Errorf("TRANSCRIPTS_CHUNK_OVERLAP must be >= 0 and smaller than chunk size, got %d", c.ChunkOverlapWords)
	}
	if c.MaxRetrievalResults <= 0 {
		return fmt.Errorf("TRANSCRIPTS_MAX_RESULTS must be positive, got %d", c.MaxRetrievalResults)
	}
	if c.MaxContextMessages <= 0 {
		return fmt.Errorf("TRANSCRIPTS_MAX_CONTEXT_MESSAGES must be positive, got %d", c.MaxContextMessages)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
