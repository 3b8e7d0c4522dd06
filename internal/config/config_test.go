package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SPREADSHEET_ID", "sheet-id-123")
	t.Setenv("QDRANT_VECTOR_SIZE", "768")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "papervec.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SpreadsheetID != "sheet-id-123" {
		t.Errorf("SpreadsheetID = %q", cfg.SpreadsheetID)
	}
	if cfg.QdrantVectorSize != 768 {
		t.Errorf("QdrantVectorSize = %d, want 768", cfg.QdrantVectorSize)
	}
	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 200 {
		t.Errorf("chunking defaults = %d/%d, want 1000/200", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.MinFormulaCount != 5 {
		t.Errorf("MinFormulaCount = %d, want 5", cfg.MinFormulaCount)
	}
	if !cfg.OCRFallback {
		t.Error("OCRFallback should default to true")
	}
	if cfg.ResultsDir != "results" {
		t.Errorf("ResultsDir = %q, want results", cfg.ResultsDir)
	}
	if cfg.QdrantCollection != "research_papers" {
		t.Errorf("QdrantCollection = %q", cfg.QdrantCollection)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
		t.Errorf("logging defaults = %v/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.QuestionsPerPaper != 10 {
		t.Errorf("QuestionsPerPaper = %d, want 10", cfg.QuestionsPerPaper)
	}
	if cfg.QAOutputDir != "qa_output" {
		t.Errorf("QAOutputDir = %q, want qa_output", cfg.QAOutputDir)
	}
	if cfg.ChatModelName != "gemma-2b-it" {
		t.Errorf("ChatModelName = %q", cfg.ChatModelName)
	}
	if cfg.ChatBaseURL != cfg.EmbeddingBaseURL {
		t.Errorf("ChatBaseURL = %q, should default to the embedding base URL %q", cfg.ChatBaseURL, cfg.EmbeddingBaseURL)
	}
	if cfg.QASpreadsheetID != "" {
		t.Errorf("QASpreadsheetID = %q, sheet export should be disabled by default", cfg.QASpreadsheetID)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing spreadsheet id",
			env:  map[string]string{"SPREADSHEET_ID": ""},
		},
		{
			name: "missing vector size",
			env:  map[string]string{"QDRANT_VECTOR_SIZE": ""},
		},
		{
			name: "non-numeric vector size",
			env:  map[string]string{"QDRANT_VECTOR_SIZE": "lots"},
		},
		{
			name: "zero vector size",
			env:  map[string]string{"QDRANT_VECTOR_SIZE": "0"},
		},
		{
			name: "overlap not below size",
			env:  map[string]string{"CHUNK_SIZE": "100", "CHUNK_OVERLAP": "100"},
		},
		{
			name: "negative overlap",
			env:  map[string]string{"CHUNK_OVERLAP": "-1"},
		},
		{
			name: "zero questions per paper",
			env:  map[string]string{"QUESTIONS_PER_PAPER": "0"},
		},
		{
			name: "bad log level",
			env:  map[string]string{"LOG_LEVEL": "loud"},
		},
		{
			name: "bad log format",
			env:  map[string]string{"LOG_FORMAT": "yaml"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want validation error")
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("CHUNK_OVERLAP", "50")
	t.Setenv("OCR_FALLBACK", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHEET_RANGE", "Papers!A:H")
	t.Setenv("CHAT_BASE_URL", "http://chat.internal:8082")
	t.Setenv("QUESTIONS_PER_PAPER", "4")
	t.Setenv("QA_SPREADSHEET_ID", "qa-sheet-456")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 500 || cfg.ChunkOverlap != 50 {
		t.Errorf("chunking = %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.OCRFallback {
		t.Error("OCRFallback should be disabled")
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
		t.Errorf("logging = %v/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.SheetRange != "Papers!A:H" {
		t.Errorf("SheetRange = %q", cfg.SheetRange)
	}
	if cfg.ChatBaseURL != "http://chat.internal:8082" {
		t.Errorf("ChatBaseURL = %q", cfg.ChatBaseURL)
	}
	if cfg.QuestionsPerPaper != 4 {
		t.Errorf("QuestionsPerPaper = %d, want 4", cfg.QuestionsPerPaper)
	}
	if cfg.QASpreadsheetID != "qa-sheet-456" {
		t.Errorf("QASpreadsheetID = %q", cfg.QASpreadsheetID)
	}
}
