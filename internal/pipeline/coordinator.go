package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"papervec/internal/artifacts"
	"papervec/internal/contextutil"
	"papervec/internal/queue"
	"papervec/internal/storage"
	"papervec/internal/vectorstore"
)

// Coordinator drives one ingestion run over every pending paper of the
// work queue.
type Coordinator struct {
	Queue      queue.Queue
	Processor  PaperProcessor
	Embedder   *EmbeddingStage
	Store      vectorstore.VectorStore
	Runs       storage.RunStore
	Collection string
	ResultsDir string
}

// Run processes every pending paper in sheet order. Paper failures are
// isolated: they mark the paper Failed and the loop moves on. Only failing
// to read the queue itself aborts the run.
func (c *Coordinator) Run(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	records, err := c.Queue.Records(ctx)
	if err != nil {
		return fmt.Errorf("read work queue: %w", err)
	}
	pending := queue.Pending(records)
	logger.InfoContext(ctx, "fetched work queue", "rows", len(records), "pending", len(pending))

	for _, rec := range pending {
		c.processPaper(ctx, rec)
	}

	logger.InfoContext(ctx, "run finished", "papers", len(pending))
	return nil
}

type outcome struct {
	chunks   int
	formulas int
	images   int
	points   int
	err      error
}

// processPaper owns the status protocol for one paper: both status cells go
// to In Progress before any work, and to Completed or Failed afterwards.
// Status write failures are logged but never change the paper's fate.
func (c *Coordinator) processPaper(ctx context.Context, rec queue.PaperRecord) {
	started := time.Now()
	layout := artifacts.NewLayout(c.ResultsDir, rec.Title)

	ctx, closeLog := c.paperContext(ctx, layout, rec.Title)
	defer closeLog()
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "processing paper", "title", rec.Title, "row", rec.Row)

	c.setStatus(ctx, rec.Row, queue.ColumnIngestionStatus, queue.StatusInProgress)
	c.setStatus(ctx, rec.Row, queue.ColumnExtractionStatus, queue.StatusInProgress)

	out := c.ingest(ctx, rec, layout)

	record := storage.RunRecord{
		ID:         uuid.NewString(),
		QueueRow:   rec.Row,
		PaperTitle: rec.Title,
		Chunks:     out.chunks,
		Formulas:   out.formulas,
		Images:     out.images,
		Points:     out.points,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}

	if out.err != nil {
		logger.ErrorContext(ctx, "failed to process paper", "title", rec.Title, "error", out.err)
		c.setStatus(ctx, rec.Row, queue.ColumnIngestionStatus, queue.StatusFailed)
		c.setStatus(ctx, rec.Row, queue.ColumnExtractionStatus, queue.StatusFailed)
		c.setStatus(ctx, rec.Row, queue.ColumnNotes, out.err.Error())
		record.Status = queue.StatusFailed
		record.Error = out.err.Error()
	} else {
		logger.InfoContext(ctx, "paper processed", "title", rec.Title, "points", out.points)
		c.setStatus(ctx, rec.Row, queue.ColumnIngestionStatus, queue.StatusCompleted)
		c.setStatus(ctx, rec.Row, queue.ColumnExtractionStatus, queue.StatusCompleted)
		notes := fmt.Sprintf("Ingestion successful. Extracted %d formulas, %d text chunks, %d images.",
			out.formulas, out.chunks, out.images)
		c.setStatus(ctx, rec.Row, queue.ColumnNotes, notes)
		record.Status = queue.StatusCompleted
	}

	if c.Runs != nil {
		if err := c.Runs.Insert(record); err != nil {
			logger.WarnContext(ctx, "failed to record run", "error", err)
		}
	}
}

// ingest runs extraction, embedding and the upsert. A panic anywhere inside
// is converted to a failure for this paper only. The upsert happens once,
// after every document has been embedded; zero points is a warning, not a
// failure.
func (c *Coordinator) ingest(ctx context.Context, rec queue.PaperRecord, layout *artifacts.Layout) (out outcome) {
	logger := contextutil.LoggerFromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			out.err = fmt.Errorf("panic while processing paper: %v", r)
		}
	}()

	result, err := c.Processor.Process(ctx, rec, layout)
	if err != nil {
		out.err = err
		return out
	}
	out.chunks = len(result.Chunks)
	out.formulas = len(result.Formulas)
	out.images = len(result.Visuals)

	meta := PaperMeta{Title: rec.Title, Authors: rec.Authors, PublicationYear: rec.PublicationYear}
	docs := AssembleDocuments(ctx, result, c.Embedder.Images != nil)
	points := c.Embedder.Embed(ctx, docs, meta)
	if len(points) == 0 {
		logger.WarnContext(ctx, "no points to ingest")
		return out
	}

	if err := c.Store.Upsert(ctx, c.Collection, points); err != nil {
		out.err = err
		return out
	}
	out.points = len(points)
	return out
}

// paperContext returns ctx with a logger fanning out to a fresh file under
// the paper's logs directory and to the run logger, so a long run stays
// visible on the console. When the file cannot be created the run logger is
// kept and processing continues.
func (c *Coordinator) paperContext(ctx context.Context, layout *artifacts.Layout, title string) (context.Context, func()) {
	parent := contextutil.LoggerFromContext(ctx)

	if err := artifacts.EnsureDir(layout.LogsDir()); err != nil {
		parent.WarnContext(ctx, "cannot create paper log directory", "error", err)
		return ctx, func() {}
	}
	name := fmt.Sprintf("processing_%s_%s.log", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	f, err := os.Create(filepath.Join(layout.LogsDir(), name))
	if err != nil {
		parent.WarnContext(ctx, "cannot create paper log file", "error", err)
		return ctx, func() {}
	}

	handler := contextutil.NewFanoutHandler(slog.NewTextHandler(f, nil), parent.Handler())
	logger := slog.New(handler).With("paper", title)
	return contextutil.WithLogger(ctx, logger), func() { _ = f.Close() }
}

func (c *Coordinator) setStatus(ctx context.Context, row int, column, value string) {
	if err := c.Queue.SetStatus(ctx, row, column, value); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to update sheet status",
			"row", row, "column", column, "value", value, "error", err)
	}
}
