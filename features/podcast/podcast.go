// Package podcast is the request orchestrator: it sequences acquisition,
// extraction, script generation, and best-effort audio synthesis for a
// single request, and owns the HTTP contract for /generate.
package podcast

import (
	"context"

	"paperpod/internal/extract"
	"paperpod/internal/fetch"
)

// Acquirer resolves a source descriptor to raw bytes plus a content-type
// hint.
type Acquirer interface {
	Acquire(ctx context.Context, src fetch.Source) ([]byte, string, error)
}

// Extractor converts raw bytes into plain text.
type Extractor interface {
	Extract(data []byte, hint string) (extract.Document, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(data []byte, hint string) (extract.Document, error)

func (f ExtractorFunc) Extract(data []byte, hint string) (extract.Document, error) {
	return f(data, hint)
}

// ScriptGenerator produces a two-host dialogue from extracted text.
type ScriptGenerator interface {
	Generate(ctx context.Context, docText string) (string, error)
}

// Synthesizer renders a script to audio and returns a playable URL.
type Synthesizer interface {
	Synthesize(ctx context.Context, script string) (string, error)
}

// Result is the unit returned across the system boundary. AudioURL is empty
// and Warning set when synthesis failed but the script is still usable.
type Result struct {
	Script   string `json:"script"`
	AudioURL string `json:"audio_url,omitempty"`
	Warning  string `json:"warning,omitempty"`
}
