package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_run_store.go -package=mocks papervec/internal/storage RunStore

import (
	"database/sql"
	"time"
)

// RunStore records processing outcomes and lists past runs.
type RunStore interface {
	Insert(run RunRecord) error
	List(limit int) ([]RunRecord, error)
}

// RunRepo is the SQLite-backed RunStore.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a new RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// Insert stores one run outcome.
func (r *RunRepo) Insert(run RunRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO ingest_runs
			(id, queue_row, paper_title, status, chunks, formulas, images, points, error, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.QueueRow, run.PaperTitle, run.Status,
		run.Chunks, run.Formulas, run.Images, run.Points,
		run.Error, run.StartedAt.UTC(), run.FinishedAt.UTC(),
	)
	return err
}

// List returns the most recent runs, newest first. A limit of 0 or less
// means at most 100.
func (r *RunRepo) List(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(
		`SELECT id, queue_row, paper_title, status, chunks, formulas, images, points, error, started_at, finished_at
		 FROM ingest_runs ORDER BY started_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var startedAt, finishedAt string
		if err := rows.Scan(
			&run.ID, &run.QueueRow, &run.PaperTitle, &run.Status,
			&run.Chunks, &run.Formulas, &run.Images, &run.Points,
			&run.Error, &startedAt, &finishedAt,
		); err != nil {
			return nil, err
		}
		if run.StartedAt, err = parseSQLiteTime(startedAt); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseSQLiteTime(finishedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// parseSQLiteTime handles the formats the sqlite3 driver may render
// DATETIME values in.
func parseSQLiteTime(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, s)
}
