// Package fetch acquires raw document bytes from either a remote URL or an
// uploaded file, and attaches a best-effort content-type hint.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var ErrFetch = errors.New("source fetch failed")

// Kind discriminates the two source variants. A descriptor is built once at
// the HTTP boundary and never re-inspected downstream.
type Kind int

const (
	KindURL Kind = iota + 1
	KindUpload
)

type Source struct {
	Kind     Kind
	URL      string
	Data     []byte
	Filename string
}

func RemoteURL(rawURL string) Source {
	return Source{Kind: KindURL, URL: rawURL}
}

func UploadedFile(data []byte, filename string) Source {
	return Source{Kind: KindUpload, Data: data, Filename: filename}
}

type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher builds a fetcher with a bounded per-request timeout and a cap
// on downloaded body size.
func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Acquire returns the raw bytes of the source plus a content-type hint. URL
// sources cost one outbound GET with no retry; a failed attempt is surfaced
// immediately. Upload sources are sniffed by magic bytes rather than
// trusting the client-supplied filename.
func (f *Fetcher) Acquire(ctx context.Context, src Source) ([]byte, string, error) {
	switch src.Kind {
	case KindURL:
		return f.download(ctx, src.URL)
	case KindUpload:
		if len(src.Data) == 0 {
			return nil, "", fmt.Errorf("%w: empty upload", ErrFetch)
		}
		return src.Data, mimetype.Detect(src.Data).String(), nil
	default:
		return nil, "", fmt.Errorf("%w: unknown source kind", ErrFetch)
	}
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", fmt.Errorf("%w: invalid url %q", ErrFetch, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/pdf,text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: unexpected status %d from %s", ErrFetch, resp.StatusCode, u.Host)
	}

	// Read one byte past the cap so an oversized body is rejected here
	// instead of being truncated and handed to the extractor.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", fmt.Errorf("%w: response from %s exceeds %d byte limit", ErrFetch, u.Host, f.maxBytes)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty response body", ErrFetch)
	}

	hint := resp.Header.Get("Content-Type")
	if hint == "" {
		hint = hintFromPath(u.Path)
	}
	return data, hint, nil
}

// hintFromPath is the fallback when the server sends no Content-Type.
func hintFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return "text/html"
	default:
		return ""
	}
}
