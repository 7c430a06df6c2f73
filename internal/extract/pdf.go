package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates page text in page order. The fold is tolerant of
// individual bad pages: each failure bumps FailedPages and the loop moves
// on. Only a document yielding zero text overall is an error.
//
// The pdf library resolves objects lazily and panics on malformed ones, so
// a corrupted file can blow up anywhere between NewReader and the last
// page. The recover here turns any of those panics into ErrExtraction; the
// per-page recover in extractPage stays so one bad page does not discard
// the readable ones.
func extractPDF(data []byte) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = Document{}
			err = fmt.Errorf("%w: not parseable as pdf: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: not parseable as pdf: %v", ErrExtraction, err)
	}

	var sb strings.Builder
	failed := 0
	total := reader.NumPage()

	for i := 1; i <= total; i++ {
		pageText, err := extractPage(reader, i)
		if err != nil {
			failed++
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return Document{}, fmt.Errorf("%w: no extractable text in %d pages", ErrExtraction, total)
	}

	return Document{Text: sb.String(), Type: TypePDF, FailedPages: failed}, nil
}

// extractPage isolates a single page parse. The pdf library panics on some
// malformed content streams, so the recover keeps one bad page from taking
// down the rest of the document.
func extractPage(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", num, r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", num)
	}
	return page.GetPlainText(nil)
}
