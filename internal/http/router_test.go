package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	papervechttp "papervec/internal/http"
	"papervec/internal/storage"
	"papervec/internal/storage/mocks"
)

func TestRouter_Healthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := papervechttp.NewRouter(&papervechttp.Deps{Runs: mocks.NewMockRunStore(ctrl)})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp papervechttp.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
}

func TestRouter_ListRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := mocks.NewMockRunStore(ctrl)
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runs.EXPECT().List(0).Return([]storage.RunRecord{
		{
			ID: "run-1", QueueRow: 2, PaperTitle: "A Paper", Status: "Completed",
			Chunks: 4, Formulas: 2, Images: 1, Points: 7,
			StartedAt: started, FinishedAt: started.Add(time.Minute),
		},
	}, nil)

	router := papervechttp.NewRouter(&papervechttp.Deps{Runs: runs})

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp []papervechttp.RunResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d runs, want 1", len(resp))
	}
	if resp[0].ID != "run-1" || resp[0].Points != 7 || resp[0].Status != "Completed" {
		t.Errorf("run = %+v", resp[0])
	}
	if resp[0].Error != "" {
		t.Errorf("error field should be omitted for successful runs, got %q", resp[0].Error)
	}
}

func TestRouter_ListRuns_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := mocks.NewMockRunStore(ctrl)
	runs.EXPECT().List(5).Return(nil, nil)

	router := papervechttp.NewRouter(&papervechttp.Deps{Runs: runs})

	req := httptest.NewRequest(http.MethodGet, "/api/runs?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouter_ListRuns_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := papervechttp.NewRouter(&papervechttp.Deps{Runs: mocks.NewMockRunStore(ctrl)})

	for _, raw := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/runs?limit="+raw, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", raw, rec.Code)
		}
	}
}

func TestRouter_ListRuns_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := mocks.NewMockRunStore(ctrl)
	runs.EXPECT().List(0).Return(nil, errors.New("database is locked"))

	router := papervechttp.NewRouter(&papervechttp.Deps{Runs: runs})

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
