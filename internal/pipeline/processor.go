package pipeline

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_paper_processor.go -package=mocks papervec/internal/pipeline PaperProcessor

import (
	"context"

	"papervec/internal/artifacts"
	"papervec/internal/chunker"
	"papervec/internal/contextutil"
	"papervec/internal/extract"
	"papervec/internal/queue"
)

// ProcessResult is everything extracted from one paper.
type ProcessResult struct {
	Chunks   []chunker.Chunk
	Formulas []extract.Formula
	Visuals  []extract.Visual
}

// PaperProcessor extracts a paper's content and writes its on-disk
// artifacts.
type PaperProcessor interface {
	Process(ctx context.Context, rec queue.PaperRecord, layout *artifacts.Layout) (ProcessResult, error)
}

// Processor is the production PaperProcessor: PDF text extraction, chunking,
// formula detection and image extraction.
type Processor struct {
	Text     extract.TextExtractor
	Formulas *extract.FormulaExtractor
	Chunks   *chunker.Chunker
}

// Process runs every extraction stage for one paper. Text extraction
// failure aborts the paper; formula extraction degrades rather than fails;
// individual bad images are skipped inside the visual extractor.
func (p *Processor) Process(ctx context.Context, rec queue.PaperRecord, layout *artifacts.Layout) (ProcessResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := layout.EnsureAll(); err != nil {
		return ProcessResult{}, err
	}

	pages, fullText, err := p.Text.Extract(ctx, rec.Path)
	if err != nil {
		return ProcessResult{}, err
	}
	logger.InfoContext(ctx, "text extraction finished", "pages", len(pages))

	chunks, err := p.Chunks.ChunkPages(ctx, pages, layout)
	if err != nil {
		return ProcessResult{}, err
	}

	formulas := p.Formulas.Extract(ctx, fullText, rec.Path)

	visualExtractor := &extract.VisualExtractor{OutDir: layout.VisualsDir()}
	visuals, err := visualExtractor.Extract(ctx, rec.Path)
	if err != nil {
		return ProcessResult{}, err
	}
	if err := extract.WriteMetadata(layout.VisualsDir(), visuals); err != nil {
		return ProcessResult{}, err
	}
	logger.InfoContext(ctx, "visual extraction finished", "images", len(visuals))

	return ProcessResult{Chunks: chunks, Formulas: formulas, Visuals: visuals}, nil
}
