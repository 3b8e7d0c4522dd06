// Package chunker splits cleaned page text into fixed-size, overlapping
// chunks and persists the human-readable page and chunk artifacts.
package chunker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"papervec/internal/artifacts"
	"papervec/internal/contextutil"
	"papervec/internal/extract"
)

const (
	pageHeaderWidth = 50
	pageWrapWidth   = 120
)

// Chunk is one embedding input with its provenance. Index is global across
// the paper and 1-based; Page is the page the chunk's window started on.
type Chunk struct {
	Index int
	Text  string
	Page  int
}

// Chunker produces overlapping windows of size runes that advance by
// size-overlap runes per step.
type Chunker struct {
	size    int
	overlap int
}

// New validates the window parameters. Overlap must be non-negative and
// strictly smaller than size, otherwise the window could not advance.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must be non-negative, got %d", overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split windows text into chunks of at most size runes. Text no longer than
// one window yields exactly one chunk; an empty string yields none. The last
// window may be shorter than size and is never emitted twice.
func (c *Chunker) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	step := c.size - c.overlap
	out := make([]string, 0, (len(runes)+step-1)/step)
	for start := 0; ; start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return out
}

// ChunkPages writes one page_NNN.txt per non-empty page and one
// chunk_NNN.txt per produced chunk under layout, and returns the chunks with
// a global 1-based index. Pages whose cleaned text is empty contribute
// neither a page file nor chunks.
func (c *Chunker) ChunkPages(ctx context.Context, pages []extract.PageText, layout *artifacts.Layout) ([]Chunk, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := artifacts.EnsureDir(layout.PagesDir()); err != nil {
		return nil, err
	}
	if err := artifacts.EnsureDir(layout.ChunksDir()); err != nil {
		return nil, err
	}

	var chunks []Chunk
	for _, page := range pages {
		if page.Cleaned == "" {
			logger.DebugContext(ctx, "page has no text, skipping", "page", page.Number)
			continue
		}

		pagePath := filepath.Join(layout.PagesDir(), fmt.Sprintf("page_%03d.txt", page.Number))
		if err := os.WriteFile(pagePath, []byte(renderPage(page)), 0o644); err != nil {
			return nil, fmt.Errorf("write page file: %w", err)
		}

		for _, text := range c.Split(page.Cleaned) {
			chunk := Chunk{Index: len(chunks) + 1, Text: text, Page: page.Number}
			chunkPath := filepath.Join(layout.ChunksDir(), fmt.Sprintf("chunk_%03d.txt", chunk.Index))
			if err := os.WriteFile(chunkPath, []byte(chunk.Text), 0o644); err != nil {
				return nil, fmt.Errorf("write chunk file: %w", err)
			}
			chunks = append(chunks, chunk)
		}
	}

	logger.InfoContext(ctx, "chunking finished", "pages", len(pages), "chunks", len(chunks))
	return chunks, nil
}

func renderPage(page extract.PageText) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Page %d\n", page.Number)
	b.WriteString(strings.Repeat("=", pageHeaderWidth))
	b.WriteByte('\n')
	b.WriteString(artifacts.WrapText(page.Cleaned, pageWrapWidth))
	b.WriteByte('\n')
	return b.String()
}
