package llm

import (
	"context"
	"fmt"
	"path/filepath"
)

// CaptionEmbedder embeds extracted figures into the same vector space as
// text by describing them. Until caption extraction exists the description
// is built from the image's provenance, which still lets figures be
// retrieved alongside chunks.
type CaptionEmbedder struct {
	texts interface {
		EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	}
}

// NewCaptionEmbedder wraps a text embeddings client.
func NewCaptionEmbedder(texts *EmbeddingsClient) *CaptionEmbedder {
	return &CaptionEmbedder{texts: texts}
}

// EmbedImage returns a vector for the image at path.
func (e *CaptionEmbedder) EmbedImage(ctx context.Context, path string) ([]float32, error) {
	desc := fmt.Sprintf("Figure or image from research paper: %s", filepath.Base(path))
	vecs, err := e.texts.EmbedTexts(ctx, []string{desc})
	if err != nil {
		return nil, fmt.Errorf("embed image description: %w", err)
	}
	return vecs[0], nil
}
