package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"papervec/internal/config"
	"papervec/internal/contextutil"
	"papervec/internal/llm"
	"papervec/internal/qa"
	"papervec/internal/queue"
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

	ctx := contextutil.WithLogger(context.Background(), logger)

	chat := llm.NewChatClient(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModelName)
	slog.Info("Chat client configured", "base_url", cfg.ChatBaseURL, "model", cfg.ChatModelName)

	var sheet qa.RowAppender
	if cfg.QASpreadsheetID != "" {
		appender, err := queue.NewSheetAppender(ctx, cfg.QASpreadsheetID, cfg.CredentialsPath, cfg.QASheetName)
		if err != nil {
			log.Fatalf("Failed to connect to QA sheet: %v", err)
		}
		sheet = appender
		slog.Info("Question sheet export enabled", "spreadsheet", cfg.QASpreadsheetID, "sheet", cfg.QASheetName)
	} else {
		slog.Info("Question sheet export disabled, writing JSON only")
	}

	pipeline := &qa.Pipeline{
		Generator: &qa.Generator{
			Chat:     chat,
			PerPaper: cfg.QuestionsPerPaper,
		},
		ResultsDir: cfg.ResultsDir,
		OutputDir:  cfg.QAOutputDir,
		Sheet:      sheet,
	}

	summary, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatalf("QA generation failed: %v", err)
	}
	slog.Info("QA generation complete",
		"papers", summary.TotalPapers, "questions", summary.TotalQuestions)
}
