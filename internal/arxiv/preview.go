package arxiv

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var extraneousWhitespace = regexp.MustCompile(`\s+`)

// FetchText downloads the PDF behind pdfURL through the on-disk cache and
// extracts its plain text for in-terminal preview.
func FetchText(ctx context.Context, pdfURL string) (string, error) {
	cache, err := newPDFCache(nil)
	if err != nil {
		return "", err
	}
	path, err := cache.Fetch(ctx, pdfURL)
	if err != nil {
		return "", err
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", err
	}
	return strings.TrimSpace(extraneousWhitespace.ReplaceAllString(builder.String(), " ")), nil
}
