package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"papervec/internal/artifacts"
)

// RowAppender receives generated questions as sheet rows. Nil means sheet
// export is disabled.
type RowAppender interface {
	AppendRows(ctx context.Context, rows [][]string) error
}

// WriteQuestions writes the per-paper question set JSON and returns its path.
func WriteQuestions(outDir, paperTitle string, questions []Question) (string, error) {
	path := filepath.Join(outDir, artifacts.SanitizeTitle(paperTitle)+"_questions.json")

	var set QuestionSet
	set.PaperMetadata.Title = paperTitle
	set.PaperMetadata.TotalQuestions = len(questions)
	set.PaperMetadata.GeneratedAt = time.Now().Format("2006-01-02 15:04:05")
	set.Questions = questions

	if err := artifacts.WriteJSONAtomic(path, set); err != nil {
		return "", fmt.Errorf("write question set for %q: %w", paperTitle, err)
	}
	return path, nil
}

// SheetHeader is the column order of exported question rows.
var SheetHeader = []string{
	"paper_title", "question_id", "question_type", "cognitive_level",
	"content_category", "question_text", "options", "correct_answer",
	"explanation", "generation_timestamp",
}

// SheetRows flattens questions into rows matching SheetHeader. Options are
// serialized as JSON in a single cell; short-answer questions put their
// expected answer in the correct_answer column.
func SheetRows(questions []Question) [][]string {
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		options := ""
		if len(q.Options) > 0 {
			if raw, err := json.Marshal(q.Options); err == nil {
				options = string(raw)
			}
		}
		answer := q.CorrectAnswer
		if answer == "" {
			answer = q.ExpectedAnswer
		}
		rows = append(rows, []string{
			q.PaperTitle, q.ID, q.Type, q.CognitiveLevel, q.ContentCategory,
			q.Text, options, answer, q.Explanation, q.GeneratedAt,
		})
	}
	return rows
}
