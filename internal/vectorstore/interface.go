// Package vectorstore persists embedded documents in Qdrant.
package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks papervec/internal/vectorstore VectorStore

import "context"

// Point is one embedded document ready for the collection.
type Point struct {
	ID      string
	Vec     []float32
	Payload map[string]any
}

// VectorStore is the ingestion-side surface of the vector database.
type VectorStore interface {
	// EnsureCollection creates the collection if missing and validates its
	// vector size if present.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// Upsert writes points and waits until they are durably applied.
	Upsert(ctx context.Context, collection string, points []Point) error
}
