package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"papervec/internal/contextutil"
	"papervec/internal/storage"
)

// HealthHandler reports process liveness.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (*HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// RunsHandler lists past ingestion runs from the local catalog.
type RunsHandler struct {
	runs storage.RunStore
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(runs storage.RunStore) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// RunResponse is one run in the listing.
type RunResponse struct {
	ID         string    `json:"id"`
	QueueRow   int       `json:"queue_row"`
	PaperTitle string    `json:"paper_title"`
	Status     string    `json:"status"`
	Chunks     int       `json:"chunks"`
	Formulas   int       `json:"formulas"`
	Images     int       `json:"images"`
	Points     int       `json:"points"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// ServeHTTP lists runs, newest first. The optional limit query parameter
// caps the result; it must be a positive integer.
func (h *RunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := h.runs.List(limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list runs", "error", err)
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}

	resp := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, RunResponse{
			ID:         run.ID,
			QueueRow:   run.QueueRow,
			PaperTitle: run.PaperTitle,
			Status:     run.Status,
			Chunks:     run.Chunks,
			Formulas:   run.Formulas,
			Images:     run.Images,
			Points:     run.Points,
			Error:      run.Error,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode runs response", "error", err)
	}
}
