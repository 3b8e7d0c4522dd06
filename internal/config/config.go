package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	SpreadsheetID   string
	CredentialsPath string
	SheetRange      string

	QdrantURL        string
	QdrantCollection string
	QdrantVectorSize int

	EmbeddingBaseURL   string
	EmbeddingModelName string
	EmbeddingAPIKey    string

	ChunkSize       int
	ChunkOverlap    int
	MinFormulaCount int
	OCRFallback     bool

	ChatBaseURL       string
	ChatModelName     string
	ChatAPIKey        string
	QuestionsPerPaper int
	QAOutputDir       string
	QASpreadsheetID   string // empty disables sheet export of questions
	QASheetName       string

	ResultsDir string
	DBPath     string
	APIPort    string

	LogLevel  slog.Level
	LogFormat string // "text" or "json"
}

// Load reads configuration from environment variables, applying defaults
// for optional fields and validating required ones. A .env file in the
// current directory or any parent up to the project root is loaded first;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		SpreadsheetID:      getEnv("SPREADSHEET_ID", ""),
		CredentialsPath:    getEnv("GOOGLE_CREDENTIALS", "credentials.json"),
		SheetRange:         getEnv("SHEET_RANGE", "Sheet1!A:Z"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "research_papers"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "granite-embedding-278m-multilingual"),
		EmbeddingAPIKey:    getEnv("EMBEDDING_API_KEY", "dummy-key"),
		ResultsDir:         getEnv("RESULTS_DIR", "results"),
		DBPath:             getEnv("DB_PATH", "./data/papervec.db"),
		APIPort:            getEnv("API_PORT", "9000"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		QAOutputDir:        getEnv("QA_OUTPUT_DIR", "qa_output"),
		QASpreadsheetID:    getEnv("QA_SPREADSHEET_ID", ""),
		QASheetName:        getEnv("QA_SHEET_NAME", "Sheet1"),
		ChatModelName:      getEnv("CHAT_MODEL_NAME", "gemma-2b-it"),
	}
	// The chat endpoint defaults to the embedding server; llama.cpp serves
	// both APIs from one port.
	cfg.ChatBaseURL = getEnv("CHAT_BASE_URL", cfg.EmbeddingBaseURL)
	cfg.ChatAPIKey = getEnv("CHAT_API_KEY", cfg.EmbeddingAPIKey)

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required")
	}

	var err error
	if cfg.QdrantVectorSize, err = getEnvInt("QDRANT_VECTOR_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.QdrantVectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required and must be greater than 0")
	}

	if cfg.ChunkSize, err = getEnvInt("CHUNK_SIZE", 1000); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getEnvInt("CHUNK_OVERLAP", 200); err != nil {
		return nil, err
	}
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("CHUNK_SIZE must be greater than 0")
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("CHUNK_OVERLAP must be non-negative and smaller than CHUNK_SIZE")
	}

	if cfg.MinFormulaCount, err = getEnvInt("MIN_FORMULA_COUNT", 5); err != nil {
		return nil, err
	}
	cfg.OCRFallback = getEnvBool("OCR_FALLBACK", true)

	if cfg.QuestionsPerPaper, err = getEnvInt("QUESTIONS_PER_PAPER", 10); err != nil {
		return nil, err
	}
	if cfg.QuestionsPerPaper <= 0 {
		return nil, fmt.Errorf("QUESTIONS_PER_PAPER must be greater than 0")
	}

	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return value, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", raw)
	}
}
