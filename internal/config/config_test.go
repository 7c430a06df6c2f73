package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paperpod/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("MURF_API_KEY", "test-murf-key")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 15000, cfg.MaxPromptChars)
	assert.Equal(t, 3000, cfg.TTSChunkChars)
	assert.Equal(t, int64(16), cfg.MaxUploadSizeMB)
	assert.Equal(t, "en-US-terrell", cfg.VoiceHostA)
	assert.Equal(t, "en-US-julia", cfg.VoiceHostB)
	assert.Equal(t, "./static/audio", cfg.AudioDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k1")
	t.Setenv("MURF_API_KEY", "k2")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_PROMPT_CHARS", "5000")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 5000, cfg.MaxPromptChars)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
}

func TestValidate_MissingKeys(t *testing.T) {
	t.Run("MissingGeminiKey", func(t *testing.T) {
		cfg := &config.Config{MurfAPIKey: "k", MaxPromptChars: 100}
		err := cfg.Validate()
		assert.ErrorIs(t, err, config.ErrMissingRequired)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("MissingMurfKey", func(t *testing.T) {
		cfg := &config.Config{GeminiAPIKey: "k", MaxPromptChars: 100}
		err := cfg.Validate()
		assert.ErrorIs(t, err, config.ErrMissingRequired)
		assert.Contains(t, err.Error(), "MURF_API_KEY")
	})

	t.Run("InvalidPromptBudget", func(t *testing.T) {
		cfg := &config.Config{GeminiAPIKey: "k", MurfAPIKey: "k", MaxPromptChars: 0}
		err := cfg.Validate()
		assert.ErrorIs(t, err, config.ErrMissingRequired)
	})
}
