// Package queue reads the paper work queue from a Google Sheet and writes
// per-paper status updates back to it.
package queue

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_queue.go -package=mocks papervec/internal/queue Queue

import "context"

// Queue is the paper tracking sheet: a list of rows and cell-level status
// writes. Implementations must tolerate SetStatus for any column returned in
// the header row.
type Queue interface {
	Records(ctx context.Context) ([]PaperRecord, error)
	SetStatus(ctx context.Context, row int, column, value string) error
}
