package extract

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"paperpod/internal/text"
)

// extractHTML pulls visible text from a page. Readability is tried first
// since it isolates the article body; pages it cannot classify fall back to
// a full-document scrape with script/style content stripped.
func extractHTML(data []byte) (Document, error) {
	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err == nil {
		if body := text.CollapseWhitespace(article.TextContent); body != "" {
			return Document{Text: body, Type: TypeHTML}, nil
		}
	}

	body, err := scrapeVisibleText(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w: not parseable as html: %v", ErrExtraction, err)
	}
	if body == "" {
		return Document{}, fmt.Errorf("%w: no visible text in html document", ErrExtraction)
	}
	return Document{Text: body, Type: TypeHTML}, nil
}

func scrapeVisibleText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()
	return text.CollapseWhitespace(doc.Text()), nil
}
