// Package extract pulls text, mathematical formulas and embedded images out
// of academic paper PDFs.
package extract

import (
	"context"
	"strings"

	"papervec/internal/contextutil"
	"papervec/internal/pdfdoc"
)

// PageText is the raw and normalized text of one page. It only lives for
// the duration of one paper's processing.
type PageText struct {
	Number  int    // 1-based
	Raw     string
	Cleaned string // whitespace-collapsed
}

// TextExtractor extracts per-page plain text from a PDF.
type TextExtractor struct{}

// Extract returns the ordered per-page text and the concatenated full raw
// text. The document handle is scoped to this call and released on every
// exit path. A single page failing to extract is logged and yields an empty
// entry; it never aborts the remaining pages.
func (TextExtractor) Extract(ctx context.Context, path string) ([]PageText, string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = doc.Close()
	}()

	numPages := doc.NumPages()
	pages := make([]PageText, 0, numPages)
	var full strings.Builder
	for n := 1; n <= numPages; n++ {
		raw, err := doc.PageText(n)
		if err != nil {
			logger.WarnContext(ctx, "page text extraction failed, skipping page", "page", n, "error", err)
			raw = ""
		}
		pages = append(pages, PageText{Number: n, Raw: raw, Cleaned: CollapseWhitespace(raw)})
		full.WriteString(raw)
	}
	return pages, full.String(), nil
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
