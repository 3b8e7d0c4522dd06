// Package qa generates study questions from the processed text chunks an
// ingestion run leaves under the results directory, and exports them as JSON
// files plus optional rows in a tracking sheet.
package qa

// Question types the generator knows how to prompt for.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeShortAnswer    = "short_answer"
	TypeTrueFalse      = "true_false"
)

// Question is one generated QA pair with its provenance.
type Question struct {
	ID              string            `json:"question_id"`
	Type            string            `json:"question_type"`
	CognitiveLevel  string            `json:"cognitive_level"`
	ContentCategory string            `json:"content_category"`
	Text            string            `json:"question"`
	Options         map[string]string `json:"options,omitempty"`
	CorrectAnswer   string            `json:"correct_answer,omitempty"`
	ExpectedAnswer  string            `json:"expected_answer,omitempty"`
	Explanation     string            `json:"explanation"`
	SourceContent   string            `json:"source_content"`
	PaperTitle      string            `json:"paper_title"`
	Authors         string            `json:"authors"`
	PublicationYear string            `json:"publication_year"`
	GeneratedAt     string            `json:"generation_timestamp"`
	Fallback        bool              `json:"is_fallback,omitempty"`
}

// PaperMeta identifies the paper a question set belongs to.
type PaperMeta struct {
	Title           string `json:"title"`
	Authors         string `json:"authors,omitempty"`
	PublicationYear string `json:"publication_year,omitempty"`
}

// QuestionSet is the JSON document written per paper.
type QuestionSet struct {
	PaperMetadata struct {
		Title          string `json:"title"`
		TotalQuestions int    `json:"total_questions"`
		GeneratedAt    string `json:"generation_timestamp"`
	} `json:"paper_metadata"`
	Questions []Question `json:"questions"`
}

// PaperChunks is one processed paper as loaded back from the results tree.
type PaperChunks struct {
	Title  string
	Chunks []string
}

// Summary reports one QA generation run.
type Summary struct {
	GeneratedAt    string         `json:"timestamp"`
	TotalPapers    int            `json:"total_papers"`
	TotalQuestions int            `json:"total_questions"`
	Papers         []PaperSummary `json:"papers"`
}

// PaperSummary is the per-paper line of a run summary.
type PaperSummary struct {
	Title     string `json:"paper_title"`
	Questions int    `json:"total_questions"`
	JSONFile  string `json:"json_file"`
}
