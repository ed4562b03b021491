package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("DATABASE_PATH", "test.db")
	t.Setenv("GEMINI_MODEL", "")
}

func TestLoad_AllRequiredSet(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "tg-token", cfg.TelegramBotToken)
	require.Equal(t, "gm-key", cfg.GeminiAPIKey)
	require.Equal(t, "test.db", cfg.DatabasePath)
	require.Equal(t, defaultGeminiModel, cfg.GeminiModel)
}

func TestLoad_ModelOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
}

func TestLoad_MissingRequired(t *testing.T) {
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "GEMINI_API_KEY", "DATABASE_PATH"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}
