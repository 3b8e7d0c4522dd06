package pipeline

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedders.go -package=mocks papervec/internal/pipeline TextEmbedder,ImageEmbedder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"papervec/internal/contextutil"
	"papervec/internal/vectorstore"
)

// TextEmbedder turns texts into vectors, one per input in input order.
type TextEmbedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ImageEmbedder turns a saved image file into a vector.
type ImageEmbedder interface {
	EmbedImage(ctx context.Context, path string) ([]float32, error)
}

// EmbeddingStage converts documents into vector store points. Images is nil
// when no image embedder is configured; image documents are then never
// assembled in the first place.
type EmbeddingStage struct {
	Texts  TextEmbedder
	Images ImageEmbedder
}

// Embed processes documents sequentially and returns one point per document
// that embedded successfully. A failure on one document is logged and
// skipped so a single bad input cannot sink the paper. Every point gets a
// fresh random UUID; re-ingesting a paper creates new points.
func (s *EmbeddingStage) Embed(ctx context.Context, docs []Document, meta PaperMeta) []vectorstore.Point {
	logger := contextutil.LoggerFromContext(ctx)

	points := make([]vectorstore.Point, 0, len(docs))
	for i, doc := range docs {
		vec, err := s.embedOne(ctx, doc)
		if err != nil {
			logger.ErrorContext(ctx, "error generating embedding for document", "index", i, "error", err)
			continue
		}
		points = append(points, vectorstore.Point{
			ID:      uuid.NewString(),
			Vec:     vec,
			Payload: doc.Payload(meta),
		})
	}
	logger.InfoContext(ctx, "embedding generation finished", "documents", len(docs), "points", len(points))
	return points
}

func (s *EmbeddingStage) embedOne(ctx context.Context, doc Document) ([]float32, error) {
	switch doc.Kind {
	case KindText, KindFormula:
		vecs, err := s.Texts.EmbedTexts(ctx, []string{doc.Text})
		if err != nil {
			return nil, err
		}
		return vecs[0], nil
	case KindImage:
		if s.Images == nil {
			return nil, fmt.Errorf("no image embedder configured")
		}
		return s.Images.EmbedImage(ctx, doc.ImagePath)
	default:
		return nil, fmt.Errorf("unhandled document kind %d", doc.Kind)
	}
}
