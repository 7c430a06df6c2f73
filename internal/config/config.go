package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingRequired = errors.New("missing required configuration")

type Config struct {
	// Server
	ServerPort int `envconfig:"SERVER_PORT" default:"8080"`

	// Providers
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	MurfAPIKey   string `envconfig:"MURF_API_KEY"`

	// Pipeline limits
	MaxUploadSizeMB   int64 `envconfig:"MAX_UPLOAD_SIZE_MB" default:"16"`
	MaxDownloadSizeMB int64 `envconfig:"MAX_DOWNLOAD_SIZE_MB" default:"32"`
	MaxPromptChars    int   `envconfig:"MAX_PROMPT_CHARS" default:"15000"`
	TTSChunkChars     int   `envconfig:"TTS_CHUNK_CHARS" default:"3000"`

	// Voices, one per host
	VoiceHostA string `envconfig:"VOICE_HOST_A" default:"en-US-terrell"`
	VoiceHostB string `envconfig:"VOICE_HOST_B" default:"en-US-julia"`

	// Timeouts (seconds) for each external call
	FetchTimeoutSeconds    int `envconfig:"FETCH_TIMEOUT_SECONDS" default:"10"`
	GenerateTimeoutSeconds int `envconfig:"GENERATE_TIMEOUT_SECONDS" default:"120"`
	TTSTimeoutSeconds      int `envconfig:"TTS_TIMEOUT_SECONDS" default:"60"`

	// Storage for synthesized episodes
	AudioDir string `envconfig:"AUDIO_DIR" default:"./static/audio"`
}

func Load() (*Config, error) {
	// Env vars may be set in the shell instead, so a missing .env is fine.
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the startup-fatal settings. Provider keys are checked
// here rather than per request so a misconfigured process refuses to boot.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingRequired)
	}
	if c.MurfAPIKey == "" {
		return fmt.Errorf("%w: MURF_API_KEY", ErrMissingRequired)
	}
	if c.MaxPromptChars <= 0 {
		return fmt.Errorf("%w: MAX_PROMPT_CHARS must be positive", ErrMissingRequired)
	}
	return nil
}
