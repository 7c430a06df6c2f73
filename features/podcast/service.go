package podcast

import (
	"context"
	"log/slog"

	"paperpod/internal/fetch"
)

type Service struct {
	acquirer  Acquirer
	extractor Extractor
	generator ScriptGenerator
	synth     Synthesizer
}

func NewService(acquirer Acquirer, extractor Extractor, generator ScriptGenerator, synth Synthesizer) *Service {
	return &Service{
		acquirer:  acquirer,
		extractor: extractor,
		generator: generator,
		synth:     synth,
	}
}

// Generate runs the pipeline for one request: Acquire -> Extract ->
// Generate -> Synthesize. The first three stages abort on failure;
// synthesis degrades to a script-only result since the script is still
// useful without audio. No stage is retried.
func (s *Service) Generate(ctx context.Context, src fetch.Source) (*Result, error) {
	data, hint, err := s.acquirer.Acquire(ctx, src)
	if err != nil {
		return nil, err
	}

	doc, err := s.extractor.Extract(data, hint)
	if err != nil {
		return nil, err
	}
	if doc.FailedPages > 0 {
		slog.WarnContext(ctx, "some pages skipped during extraction", "failed_pages", doc.FailedPages)
	}
	slog.InfoContext(ctx, "document extracted", "type", doc.Type.String(), "chars", len(doc.Text))

	script, err := s.generator.Generate(ctx, doc.Text)
	if err != nil {
		return nil, err
	}

	audioURL, err := s.synth.Synthesize(ctx, script)
	if err != nil {
		slog.WarnContext(ctx, "audio synthesis failed, returning script only", "error", err)
		return &Result{Script: script, Warning: "audio unavailable"}, nil
	}

	return &Result{Script: script, AudioURL: audioURL}, nil
}
