package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"paperpod/internal/text"
)

var ErrGeneration = errors.New("script generation failed")

type Client struct {
	client         *genai.Client
	model          string
	maxPromptChars int
	timeout        time.Duration
}

// NewClient wraps the Gemini SDK. Extra options are accepted so tests can
// point the client at a local server.
func NewClient(ctx context.Context, apiKey, model string, maxPromptChars int, timeout time.Duration, opts ...option.ClientOption) (*Client, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	c, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{client: c, model: model, maxPromptChars: maxPromptChars, timeout: timeout}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Generate asks the model for a two-host podcast script built from the
// extracted paper text. One synchronous call, no retry: a repeated call on
// a transient error would bill a second generation for the same input.
func (c *Client) Generate(ctx context.Context, docText string) (string, error) {
	if strings.TrimSpace(docText) == "" {
		return "", fmt.Errorf("%w: empty document text", ErrGeneration)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(text.Truncate(docText, c.maxPromptChars))
	slog.DebugContext(ctx, "generating script", "model", c.model, "prompt_chars", len(prompt))

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.ErrorContext(ctx, "generation failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	script := collectText(resp)
	if strings.TrimSpace(script) == "" {
		return "", fmt.Errorf("%w: model returned an empty completion", ErrGeneration)
	}
	return script, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return sb.String()
}
