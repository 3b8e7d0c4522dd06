package pipeline

import (
	"context"
	"os"

	"papervec/internal/contextutil"
)

// AssembleDocuments flattens a paper's extraction results into the ordered
// document list to embed: text chunks, then formulas, then images. Image
// documents are only assembled when an image embedder exists and the saved
// file is still on disk.
func AssembleDocuments(ctx context.Context, result ProcessResult, withImages bool) []Document {
	logger := contextutil.LoggerFromContext(ctx)

	docs := make([]Document, 0, len(result.Chunks)+len(result.Formulas)+len(result.Visuals))
	for _, chunk := range result.Chunks {
		docs = append(docs, Document{
			Kind:       KindText,
			Text:       chunk.Text,
			ChunkIndex: chunk.Index,
			Page:       chunk.Page,
		})
	}
	for _, formula := range result.Formulas {
		docs = append(docs, Document{
			Kind:        KindFormula,
			Text:        formula.Content,
			FormulaKind: formula.Kind,
			Page:        formula.Page,
		})
	}
	if withImages {
		for _, visual := range result.Visuals {
			if _, err := os.Stat(visual.Path); err != nil {
				logger.WarnContext(ctx, "image file missing, skipping", "path", visual.Path, "error", err)
				continue
			}
			docs = append(docs, Document{
				Kind:      KindImage,
				ImagePath: visual.Path,
				Page:      visual.Page,
				Caption:   visual.Caption,
			})
		}
	}

	logger.InfoContext(ctx, "assembled documents for ingestion",
		"total", len(docs),
		"chunks", len(result.Chunks),
		"formulas", len(result.Formulas),
		"images", len(result.Visuals))
	return docs
}
