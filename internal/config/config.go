// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultGeminiModel = "gemini-1.5-flash"

type Config struct {
	TelegramBotToken string
	GeminiAPIKey     string
	DatabasePath     string
	GeminiModel      string
}

// Load reads configuration from the environment, with a best-effort .env
// file for local runs. The three credentials are required; a missing one is
// an error so the process can fail fast at startup.
func Load() (*Config, error) {
	// Missing .env is fine in production, real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		DatabasePath:     os.Getenv("DATABASE_PATH"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = defaultGeminiModel
	}

	var missing []string
	if cfg.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if cfg.DatabasePath == "" {
		missing = append(missing, "DATABASE_PATH")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config: required environment variables not set: %v", missing)
	}
	return cfg, nil
}
