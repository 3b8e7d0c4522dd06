package storage

import "time"

// RunRecord is one paper's processing outcome in the local run catalog.
type RunRecord struct {
	ID         string // UUID
	QueueRow   int    // 1-based sheet row of the paper
	PaperTitle string
	Status     string // Completed or Failed
	Chunks     int
	Formulas   int
	Images     int
	Points     int    // points actually upserted
	Error      string // empty on success
	StartedAt  time.Time
	FinishedAt time.Time
}
