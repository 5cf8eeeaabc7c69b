// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("BaseURL = %s, want http://localhost:11434/v1", cfg.BaseURL)
	}
	if cfg.ChatModel != "llama3.1" {
		t.Errorf("ChatModel = %s, want llama3.1", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "nomic-embed-text" {
		t.Errorf("EmbeddingModel = %s, want nomic-embed-text", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.ChunkTargetWords != 500 {
		t.Errorf("ChunkTargetWords = %d, want 500", cfg.ChunkTargetWords)
	}
	if cfg.ChunkOverlapWords != 50 {
		t.Errorf("ChunkOverlapWords = %d, want 50", cfg.ChunkOverlapWords)
	}
	if cfg.MaxRetrievalResults != 5 {
		t.Errorf("MaxRetrievalResults = %d, want 5", cfg.MaxRetrievalResults)
	}
	if cfg.SimilarityThreshold != 0.3 {
		t.Errorf("SimilarityThreshold = %f, want 0.3", cfg.SimilarityThreshold)
	}
	if cfg.VectorWeight != 0.7 {
		t.Errorf("VectorWeight = %f, want 0.7", cfg.VectorWeight)
	}
	if cfg.LexicalWeight != 0.3 {
		t.Errorf("LexicalWeight = %f, want 0.3", cfg.LexicalWeight)
	}
	if cfg.MaxContextMessages != 10 {
		t.Errorf("MaxContextMessages = %d, want 10", cfg.MaxContextMessages)
	}
	if cfg.VariantDelay != time.Second {
		t.Errorf("VariantDelay = %v, want 1s", cfg.VariantDelay)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("TRANSCRIPTS_BASE_URL", "http://models.local:8080/v1")
	os.Setenv("TRANSCRIPTS_CHAT_MODEL", "qwen2.5")
	os.Setenv("TRANSCRIPTS_CHUNK_WORDS", "300")
	os.Setenv("TRANSCRIPTS_CHUNK_OVERLAP", "30")
	os.Setenv("TRANSCRIPTS_SIMILARITY_THRESHOLD", "0.5")
	os.Setenv("TRANSCRIPTS_VARIANT_DELAY", "250ms")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != "http://models.local:8080/v1" {
		t.Errorf("BaseURL = %s, want custom value", cfg.BaseURL)
	}
	if cfg.ChatModel != "qwen2.5" {
		t.Errorf("ChatModel = %s, want qwen2.5", cfg.ChatModel)
	}
	if cfg.ChunkTargetWords != 300 {
		t.Errorf("ChunkTargetWords = %d, want 300", cfg.ChunkTargetWords)
	}
	if cfg.ChunkOverlapWords != 30 {
		t.Errorf("ChunkOverlapWords = %d, want 30", cfg.ChunkOverlapWords)
	}
	if cfg.SimilarityThreshold != 0.5 {
		t.Errorf("SimilarityThreshold = %f, want 0.5", cfg.SimilarityThreshold)
	}
	if cfg.VariantDelay != 250*time.Millisecond {
		t.Errorf("VariantDelay = %v, want 250ms", cfg.VariantDelay)
	}
}

func TestLoad_APIKeyFallback(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENAI_API_KEY", "sk-fallback")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIKey != "sk-fallback" {
		t.Errorf("APIKey = %s, want OPENAI_API_KEY fallback", cfg.APIKey)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold above 1", func(c *Config) { c.SimilarityThreshold = 1.5 }},
		{"threshold negative", func(c *Config) { c.SimilarityThreshold = -0.1 }},
		{"vector weight above 1", func(c *Config) { c.VectorWeight = 2 }},
		{"lexical weight negative", func(c *Config) { c.LexicalWeight = -0.2 }},
		{"both weights zero", func(c *Config) { c.VectorWeight = 0; c.LexicalWeight = 0 }},
		{"retries negative", func(c *Config) { c.MaxRetries = -1 }},
		{"retries too high", func(c *Config) { c.MaxRetries = 99 }},
		{"chunk words zero", func(c *Config) { c.ChunkTargetWords = 0 }},
		{"overlap negative", func(c *Config) { c.ChunkOverlapWords = -1 }},
		{"overlap exceeds chunk", func(c *Config) { c.ChunkOverlapWords = 500 }},
		{"max results zero", func(c *Config) { c.MaxRetrievalResults = 0 }},
		{"context messages zero", func(c *Config) { c.MaxContextMessages = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
