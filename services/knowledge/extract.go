package knowledge

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"neobook/utils"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// extractText pulls plain text out of an uploaded document. PDFs are read
// page by page, best-effort: unreadable pages are skipped and only a document
// with no readable text at all is an error. Anything that is not a PDF is
// treated as UTF-8 text.
func extractText(data []byte, filename string) (string, error) {
	if isPDF(data) {
		return extractPDFText(data, filename)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %q is not a PDF and not valid UTF-8 text", filename)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("document %q contains no text", filename)
	}
	return text, nil
}

func isPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

func extractPDFText(data []byte, filename string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read PDF %q: %w", filename, err)
	}

	var sb strings.Builder
	skipped := 0
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		text, err := extractPage(reader, pageIndex)
		if err != nil {
			skipped++
			utils.GetLogger().Warn("skipping unreadable PDF page",
				zap.String("file", filename), zap.Int("page", pageIndex), zap.Error(err))
			continue
		}
		sb.WriteString(text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no readable text in PDF %q (%d pages skipped)", filename, skipped)
	}
	return text, nil
}

// extractPage isolates a single page. The pdf library can panic on malformed
// content streams, which must not take down the whole ingestion.
func extractPage(reader *pdf.Reader, pageIndex int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page extraction panicked: %v", r)
		}
	}()

	page := reader.Page(pageIndex)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d is null", pageIndex)
	}
	return page.GetPlainText(nil)
}
