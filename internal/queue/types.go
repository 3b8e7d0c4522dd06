package queue

// Status columns of the paper tracking sheet.
const (
	ColumnIngestionStatus  = "ingestion_status"
	ColumnExtractionStatus = "extraction_status"
	ColumnNotes            = "notes"
)

// Status values written back to the sheet.
const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
)

// PaperRecord is one data row of the tracking sheet. Row is the 1-based
// sheet row number; the header occupies row 1, so data rows start at 2.
type PaperRecord struct {
	Row              int
	Title            string
	Authors          string
	PublicationYear  string
	Path             string
	IngestionStatus  string
	ExtractionStatus string
	Notes            string
}

// Pending reports whether the paper has never been touched by a run: both
// status cells must be empty. A row with any prior status, including a stale
// "In Progress" from a crashed run, is not selected again.
func (r PaperRecord) Pending() bool {
	return r.IngestionStatus == "" && r.ExtractionStatus == ""
}

// Pending filters records down to those eligible for processing, preserving
// sheet order.
func Pending(records []PaperRecord) []PaperRecord {
	out := make([]PaperRecord, 0, len(records))
	for _, r := range records {
		if r.Pending() {
			out = append(out, r)
		}
	}
	return out
}
