package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	llmOnce   sync.Once
	llmConfig *LLMConfig
)

// LLMConfig holds the completion-service settings. A missing API key is
// legal; the completion client degrades to sentinel answers.
type LLMConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
}

// GetLLMConfig resolves the completion settings once from .env and the
// process environment.
func GetLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, falling back to environment variables")
		}

		llmConfig = &LLMConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			Model:       envOr("SPECWISE_MODEL", "gpt-4o-mini"),
			Temperature: envFloat("SPECWISE_TEMPERATURE", 0.2),
			MaxTokens:   envInt("SPECWISE_MAX_TOKENS", 1200),
		}
	})
	return llmConfig
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
