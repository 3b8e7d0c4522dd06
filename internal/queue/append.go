package queue

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetAppender appends rows to a sheet tab. The QA exporter uses it to
// publish generated questions; it is separate from SheetsQueue because the
// question output usually lives in a different spreadsheet than the work
// queue.
type SheetAppender struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetAppender authenticates with the credentials file and targets the
// named tab of the given spreadsheet.
func NewSheetAppender(ctx context.Context, spreadsheetID, credentialsPath, sheetName string) (*SheetAppender, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetAppender{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRows appends the rows after the tab's last data row.
func (a *SheetAppender) AppendRows(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	body := &sheets.ValueRange{Values: values}
	_, err := a.svc.Spreadsheets.Values.Append(a.spreadsheetID, a.sheetName, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", a.sheetName, err)
	}
	return nil
}
