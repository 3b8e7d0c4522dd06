package qa

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"papervec/internal/contextutil"
)

// LoadPapers walks the results tree an ingestion run produced and returns
// every paper that has at least one non-empty chunk file under
// processed_text/chunks. A missing results directory is not an error; it
// just means there is nothing to generate questions for yet.
func LoadPapers(ctx context.Context, resultsDir string) ([]PaperChunks, error) {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.WarnContext(ctx, "results directory not found", "dir", resultsDir)
			return nil, nil
		}
		return nil, err
	}

	var papers []PaperChunks
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		chunks, err := loadChunks(ctx, filepath.Join(resultsDir, entry.Name(), "processed_text", "chunks"))
		if err != nil || len(chunks) == 0 {
			continue
		}
		papers = append(papers, PaperChunks{Title: entry.Name(), Chunks: chunks})
		logger.InfoContext(ctx, "loaded processed paper", "paper", entry.Name(), "chunks", len(chunks))
	}
	return papers, nil
}

// loadChunks reads every .txt chunk file in name order, skipping empty and
// unreadable ones.
func loadChunks(ctx context.Context, chunksDir string) ([]string, error) {
	entries, err := os.ReadDir(chunksDir)
	if err != nil {
		return nil, err
	}
	logger := contextutil.LoggerFromContext(ctx)

	var chunks []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(chunksDir, entry.Name()))
		if err != nil {
			logger.WarnContext(ctx, "cannot read chunk file", "file", entry.Name(), "error", err)
			continue
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			continue
		}
		chunks = append(chunks, content)
	}
	return chunks, nil
}
