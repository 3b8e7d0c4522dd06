package queue

import "testing"

func sheetValues() [][]interface{} {
	return [][]interface{}{
		{"paper_title", "authors", "publication_year", "paper_path", "ingestion_status", "extraction_status", "notes"},
		{"Attention Is All You Need", "Vaswani et al.", 2017, "papers/attention.pdf", "", "", ""},
		{"Deep Residual Learning", "He et al.", "2015", "papers/resnet.pdf", "Completed", "Completed", "done"},
		{"Short Row Paper", "Someone", "2020", "papers/short.pdf"},
	}
}

func TestParseRows(t *testing.T) {
	records, header, err := parseRows(sheetValues())
	if err != nil {
		t.Fatalf("parseRows() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if header["notes"] != 6 {
		t.Errorf("header[notes] = %d, want 6", header["notes"])
	}

	first := records[0]
	if first.Row != 2 {
		t.Errorf("first data row = %d, want sheet row 2", first.Row)
	}
	if first.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.PublicationYear != "2017" {
		t.Errorf("PublicationYear = %q, want numeric cell rendered as string", first.PublicationYear)
	}
	if first.Path != "papers/attention.pdf" {
		t.Errorf("Path = %q", first.Path)
	}

	short := records[2]
	if short.Row != 4 {
		t.Errorf("short row number = %d, want 4", short.Row)
	}
	if short.IngestionStatus != "" || short.ExtractionStatus != "" || short.Notes != "" {
		t.Errorf("short row must pad missing trailing cells, got %+v", short)
	}
}

func TestParseRows_Errors(t *testing.T) {
	if _, _, err := parseRows(nil); err == nil {
		t.Error("parseRows(nil) error = nil, want missing-header error")
	}

	noPath := [][]interface{}{{"paper_title", "ingestion_status", "extraction_status"}}
	if _, _, err := parseRows(noPath); err == nil {
		t.Error("parseRows without paper_path column: error = nil, want error")
	}
}

func TestPendingFilter(t *testing.T) {
	records, _, err := parseRows(sheetValues())
	if err != nil {
		t.Fatal(err)
	}

	pending := Pending(records)
	if len(pending) != 2 {
		t.Fatalf("got %d pending, want 2", len(pending))
	}
	if pending[0].Title != "Attention Is All You Need" || pending[1].Title != "Short Row Paper" {
		t.Errorf("pending order = [%q, %q], want sheet order", pending[0].Title, pending[1].Title)
	}
}

func TestPending_StatusCombinations(t *testing.T) {
	tests := []struct {
		name       string
		ingestion  string
		extraction string
		want       bool
	}{
		{"both empty", "", "", true},
		{"ingestion set", "Completed", "", false},
		{"extraction set", "", "Failed", false},
		{"both set", "Completed", "Completed", false},
		{"stale in-progress", "In Progress", "In Progress", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PaperRecord{IngestionStatus: tt.ingestion, ExtractionStatus: tt.extraction}
			if got := r.Pending(); got != tt.want {
				t.Errorf("Pending() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColLetter(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{4, "E"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}
	for _, tt := range tests {
		if got := colLetter(tt.col); got != tt.want {
			t.Errorf("colLetter(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
