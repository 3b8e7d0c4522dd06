package queue

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Well-known header names of the tracking sheet.
const (
	columnTitle           = "paper_title"
	columnAuthors         = "authors"
	columnPublicationYear = "publication_year"
	columnPath            = "paper_path"
)

// SheetsQueue is the production Queue backed by the Google Sheets API using
// a service account credentials file.
type SheetsQueue struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
	sheetName     string

	header map[string]int // column name -> 0-based column index
}

// NewSheetsQueue authenticates with the credentials file and targets the
// given spreadsheet and range. The range may carry a sheet name prefix
// ("Sheet1!A:Z"); status updates are addressed within that sheet.
func NewSheetsQueue(ctx context.Context, spreadsheetID, credentialsPath, readRange string) (*SheetsQueue, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	sheetName := readRange
	if i := strings.Index(readRange, "!"); i >= 0 {
		sheetName = readRange[:i]
	}
	return &SheetsQueue{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		sheetName:     sheetName,
	}, nil
}

// Records fetches the full sheet and parses the header plus every data row.
// The header row is cached so later SetStatus calls can resolve columns.
func (q *SheetsQueue) Records(ctx context.Context) ([]PaperRecord, error) {
	resp, err := q.svc.Spreadsheets.Values.Get(q.spreadsheetID, q.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", q.spreadsheetID, err)
	}
	records, header, err := parseRows(resp.Values)
	if err != nil {
		return nil, err
	}
	q.header = header
	return records, nil
}

// SetStatus writes value into the cell at (row, column). Row is the 1-based
// sheet row number as shown in the sheet UI.
func (q *SheetsQueue) SetStatus(ctx context.Context, row int, column, value string) error {
	if q.header == nil {
		if _, err := q.Records(ctx); err != nil {
			return err
		}
	}
	col, ok := q.header[column]
	if !ok {
		return fmt.Errorf("column %q not found in sheet header", column)
	}
	cell := fmt.Sprintf("%s!%s%d", q.sheetName, colLetter(col), row)
	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := q.svc.Spreadsheets.Values.Update(q.spreadsheetID, cell, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update cell %s: %w", cell, err)
	}
	return nil
}

// parseRows turns raw sheet values into records. The first row is the
// header; data rows get sheet row numbers starting at 2. Short rows are
// padded with empty cells.
func parseRows(values [][]interface{}) ([]PaperRecord, map[string]int, error) {
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("sheet has no header row")
	}
	header := make(map[string]int, len(values[0]))
	for i, cell := range values[0] {
		header[strings.TrimSpace(cellString(cell))] = i
	}
	for _, required := range []string{columnTitle, columnPath, ColumnIngestionStatus, ColumnExtractionStatus} {
		if _, ok := header[required]; !ok {
			return nil, nil, fmt.Errorf("sheet header is missing column %q", required)
		}
	}

	records := make([]PaperRecord, 0, len(values)-1)
	for i, row := range values[1:] {
		get := func(column string) string {
			col, ok := header[column]
			if !ok || col >= len(row) {
				return ""
			}
			return strings.TrimSpace(cellString(row[col]))
		}
		records = append(records, PaperRecord{
			Row:              i + 2,
			Title:            get(columnTitle),
			Authors:          get(columnAuthors),
			PublicationYear:  get(columnPublicationYear),
			Path:             get(columnPath),
			IngestionStatus:  get(ColumnIngestionStatus),
			ExtractionStatus: get(ColumnExtractionStatus),
			Notes:            get(ColumnNotes),
		})
	}
	return records, header, nil
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// colLetter converts a 0-based column index to its A1 letter form.
func colLetter(col int) string {
	letters := ""
	for col >= 0 {
		letters = string(rune('A'+col%26)) + letters
		col = col/26 - 1
	}
	return letters
}
