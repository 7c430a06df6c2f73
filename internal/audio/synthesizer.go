// Package audio turns a finished script into a playable episode: speaker
// turns are voiced individually through a TTS provider, the clips are
// stitched in order, and the combined mp3 is stored for serving.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

var ErrSynthesis = errors.New("speech synthesis failed")

// SpeechClient is the provider boundary. Speak returns a hosted clip URL,
// Download fetches its bytes.
type SpeechClient interface {
	Speak(ctx context.Context, text, voiceID string) (string, error)
	Download(ctx context.Context, audioURL string) ([]byte, error)
}

type Synthesizer struct {
	tts        SpeechClient
	store      *Store
	voiceHostA string
	voiceHostB string
	chunkChars int
}

func NewSynthesizer(tts SpeechClient, store *Store, voiceHostA, voiceHostB string, chunkChars int) *Synthesizer {
	return &Synthesizer{
		tts:        tts,
		store:      store,
		voiceHostA: voiceHostA,
		voiceHostB: voiceHostB,
		chunkChars: chunkChars,
	}
}

// Synthesize renders the whole script and returns the local URL of the
// stored episode. Each host keeps a fixed voice across the episode; a turn
// longer than the provider's per-request limit is split at word boundaries
// into multiple clips. Any failure is reported once, with no partial file
// kept.
func (s *Synthesizer) Synthesize(ctx context.Context, script string) (string, error) {
	turns := ParseTurns(script)
	if len(turns) == 0 {
		return "", fmt.Errorf("%w: script has no speakable content", ErrSynthesis)
	}

	var combined []byte
	clips := 0

	for _, turn := range turns {
		voice := s.voiceFor(turn.Speaker)
		for _, chunk := range splitChunks(turn.Text, s.chunkChars) {
			clipURL, err := s.tts.Speak(ctx, chunk, voice)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrSynthesis, err)
			}
			data, err := s.tts.Download(ctx, clipURL)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrSynthesis, err)
			}
			combined = append(combined, data...)
			clips++
		}
	}

	if len(combined) == 0 {
		return "", fmt.Errorf("%w: provider produced no audio", ErrSynthesis)
	}

	url, err := s.store.Save(combined)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	slog.InfoContext(ctx, "episode synthesized", "clips", clips, "bytes", len(combined), "url", url)
	return url, nil
}

// voiceFor maps the two hosts to their configured voices. Unlabeled
// narration falls back to host A's voice.
func (s *Synthesizer) voiceFor(speaker string) string {
	if speaker == "Host B" {
		return s.voiceHostB
	}
	return s.voiceHostA
}

// splitChunks breaks text into pieces of at most max bytes, cutting at
// whitespace where possible and never inside a multi-byte rune.
func splitChunks(text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if max <= 0 || len(text) <= max {
		return []string{text}
	}

	var chunks []string
	for len(text) > max {
		cut := strings.LastIndex(text[:max], " ")
		if cut <= 0 {
			cut = max
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				cut = max
			}
		}
		chunks = append(chunks, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
