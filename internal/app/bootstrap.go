package app

import (
	"context"
	"fmt"
	"time"

	"paperpod/internal/adapter/gemini"
	"paperpod/internal/adapter/murf"
	"paperpod/internal/audio"
	"paperpod/internal/config"
)

// Dependencies holds the provider clients and stores built once at process
// start and passed into the app, so the pipeline stays testable with
// substitutable fakes.
type Dependencies struct {
	Gemini *gemini.Client
	Synth  *audio.Synthesizer
	Store  *audio.Store
}

func Bootstrap(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	gem, err := gemini.NewClient(
		ctx,
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.MaxPromptChars,
		time.Duration(cfg.GenerateTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	store, err := audio.NewStore(cfg.AudioDir)
	if err != nil {
		return nil, err
	}

	tts := murf.NewClient(cfg.MurfAPIKey, time.Duration(cfg.TTSTimeoutSeconds)*time.Second)
	synth := audio.NewSynthesizer(tts, store, cfg.VoiceHostA, cfg.VoiceHostB, cfg.TTSChunkChars)

	return &Dependencies{Gemini: gem, Synth: synth, Store: store}, nil
}

func (d *Dependencies) Close() {
	if d.Gemini != nil {
		d.Gemini.Close()
	}
}
