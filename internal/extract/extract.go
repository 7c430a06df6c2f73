// Package extract turns raw document bytes into plain text. PDF and HTML
// are the supported formats; anything else fails fast without a parse
// attempt.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExtraction        = errors.New("document extraction failed")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

type ContentType int

const (
	TypeUnknown ContentType = iota
	TypePDF
	TypeHTML
)

func (t ContentType) String() string {
	switch t {
	case TypePDF:
		return "pdf"
	case TypeHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Document is the extractor's output, consumed once by script generation.
// FailedPages counts PDF pages that were skipped rather than aborting the
// whole document.
type Document struct {
	Text        string
	Type        ContentType
	FailedPages int
}

// Detect maps a content-type hint (header value or sniffed MIME) to the
// supported formats.
func Detect(hint string) ContentType {
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "application/pdf"):
		return TypePDF
	case strings.Contains(h, "text/html"), strings.Contains(h, "application/xhtml"):
		return TypeHTML
	default:
		return TypeUnknown
	}
}

// Extract parses data according to the hinted type. Unknown types are
// rejected immediately instead of guessing.
func Extract(data []byte, hint string) (Document, error) {
	switch Detect(hint) {
	case TypePDF:
		return extractPDF(data)
	case TypeHTML:
		return extractHTML(data)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, hint)
	}
}
