// Package murf is a thin client for the Murf text-to-speech HTTP API. Murf
// returns a hosted URL for each generated clip; the caller downloads and
// assembles the clips.
package murf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.murf.ai"

type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
	}
}

func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Speak synthesizes one chunk of text with the given voice and returns the
// provider-hosted audio file URL.
func (c *Client) Speak(ctx context.Context, text, voiceID string) (string, error) {
	reqBody := map[string]interface{}{
		"text":        text,
		"voiceId":     voiceID,
		"format":      "MP3",
		"channelType": "STEREO",
		"sampleRate":  44100,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/speech/generate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("murf api error: %d", resp.StatusCode)
	}

	var result struct {
		AudioFile string `json:"audioFile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.AudioFile == "" {
		return "", fmt.Errorf("murf api returned no audio file")
	}

	return result.AudioFile, nil
}

// Download fetches the clip bytes behind a URL returned by Speak.
func (c *Client) Download(ctx context.Context, audioURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", audioURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("audio download error: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
