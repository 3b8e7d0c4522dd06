package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"papervec/internal/chunker"
	"papervec/internal/config"
	"papervec/internal/contextutil"
	"papervec/internal/extract"
	"papervec/internal/http"
	"papervec/internal/llm"
	"papervec/internal/pipeline"
	"papervec/internal/queue"
	"papervec/internal/storage"
	"papervec/internal/vectorstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	runRepo := storage.NewRunRepo(db)
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx := contextutil.WithLogger(context.Background(), logger)

	workQueue, err := queue.NewSheetsQueue(ctx, cfg.SpreadsheetID, cfg.CredentialsPath, cfg.SheetRange)
	if err != nil {
		log.Fatalf("Failed to connect to Google Sheets: %v", err)
	}
	slog.Info("Connected to tracking sheet", "spreadsheet", cfg.SpreadsheetID)

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Fail fast if the embeddings server is down or its vector size does not
	// match the collection.
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d", cfg.QdrantVectorSize)
	}
	slog.Info("Embedding client validated", "model", cfg.EmbeddingModelName, "vector_size", cfg.QdrantVectorSize)

	textChunker, err := chunker.New(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatalf("Invalid chunking configuration: %v", err)
	}

	ocr := extract.NewTesseractEngine()
	processor := &pipeline.Processor{
		Formulas: extract.NewFormulaExtractor(cfg.MinFormulaCount, cfg.OCRFallback, ocr),
		Chunks:   textChunker,
	}

	coordinator := &pipeline.Coordinator{
		Queue:     workQueue,
		Processor: processor,
		Embedder: &pipeline.EmbeddingStage{
			Texts:  embedder,
			Images: llm.NewCaptionEmbedder(embedder),
		},
		Store:      vectorStore,
		Runs:       runRepo,
		Collection: cfg.QdrantCollection,
		ResultsDir: cfg.ResultsDir,
	}

	// Serve the status API while the run is in flight.
	router := http.NewRouter(&http.Deps{Runs: runRepo})
	addr := ":" + cfg.APIPort
	go func() {
		slog.Info("Starting status API", "addr", addr)
		if err := nethttp.ListenAndServe(addr, router); err != nil {
			slog.Error("Status API stopped", "error", err)
		}
	}()

	if err := coordinator.Run(ctx); err != nil {
		log.Fatalf("Ingestion run failed: %v", err)
	}
	slog.Info("Ingestion run complete")
}
