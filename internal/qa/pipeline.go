package qa

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"papervec/internal/artifacts"
	"papervec/internal/contextutil"
)

// Pipeline runs QA generation over every processed paper in the results
// tree. Paper failures are isolated the same way the ingestion run isolates
// them: log, skip, continue.
type Pipeline struct {
	Generator  *Generator
	ResultsDir string
	OutputDir  string
	Sheet      RowAppender // nil disables sheet export
}

// Run generates questions for every processed paper and writes a summary
// report into the output directory.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	papers, err := LoadPapers(ctx, p.ResultsDir)
	if err != nil {
		return Summary{}, fmt.Errorf("load processed papers: %w", err)
	}
	if len(papers) == 0 {
		logger.WarnContext(ctx, "no processed papers found, run the ingestion pipeline first",
			"results_dir", p.ResultsDir)
		return Summary{}, nil
	}
	logger.InfoContext(ctx, "generating questions", "papers", len(papers))

	summary := Summary{GeneratedAt: time.Now().Format(time.RFC3339)}
	for i, paper := range papers {
		logger.InfoContext(ctx, "processing paper", "paper", paper.Title,
			"position", fmt.Sprintf("%d/%d", i+1, len(papers)))

		questions := p.Generator.GenerateForPaper(ctx, paperMeta(paper.Title), paper.Chunks)
		if len(questions) == 0 {
			logger.WarnContext(ctx, "no questions generated", "paper", paper.Title)
			continue
		}

		jsonFile, err := WriteQuestions(p.OutputDir, paper.Title, questions)
		if err != nil {
			logger.ErrorContext(ctx, "failed to write question set", "paper", paper.Title, "error", err)
			continue
		}

		if p.Sheet != nil {
			if err := p.Sheet.AppendRows(ctx, SheetRows(questions)); err != nil {
				logger.WarnContext(ctx, "failed to export questions to sheet",
					"paper", paper.Title, "error", err)
			}
		}

		summary.TotalPapers++
		summary.TotalQuestions += len(questions)
		summary.Papers = append(summary.Papers, PaperSummary{
			Title:     paper.Title,
			Questions: len(questions),
			JSONFile:  jsonFile,
		})
		logger.InfoContext(ctx, "questions generated", "paper", paper.Title, "count", len(questions))
	}

	name := fmt.Sprintf("qa_generation_summary_%s.json", time.Now().Format("20060102_150405"))
	if err := artifacts.WriteJSONAtomic(filepath.Join(p.OutputDir, name), summary); err != nil {
		return summary, fmt.Errorf("write run summary: %w", err)
	}
	logger.InfoContext(ctx, "QA generation finished",
		"papers", summary.TotalPapers, "questions", summary.TotalQuestions)
	return summary, nil
}

var yearPattern = regexp.MustCompile(`(?:^|[ _-])((?:19|20)\d{2})(?:$|[ _-])`)

// paperMeta rebuilds what metadata it can from a sanitized directory name.
// Authors are not recoverable from the results tree; the year is only set
// when the title carries one.
func paperMeta(title string) PaperMeta {
	meta := PaperMeta{Title: title}
	if m := yearPattern.FindStringSubmatch(title); m != nil {
		meta.PublicationYear = m[1]
	}
	return meta
}
