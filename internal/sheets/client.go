package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// ReadRange reads a rectangular cell range by A1 name.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, range_).Context(ctx).Do()
	if err != nil {
		return nil, wrapAccessError(fmt.Errorf("failed to read range %s: %w", range_, err))
	}

	return resp.Values, nil
}

// ValueUpdate is one (range, values) pair in a batched cell update.
type ValueUpdate struct {
	Range  string
	Values [][]interface{}
}

// BatchUpdateValues writes all updates in a single batched call with
// USER_ENTERED interpretation, so formula strings are evaluated by the
// sheet. Updates are sorted by range for a stable request shape.
func (c *Client) BatchUpdateValues(ctx context.Context, spreadsheetID string, updates []ValueUpdate) error {
	sort.Slice(updates, func(i, j int) bool { return updates[i].Range < updates[j].Range })

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  u.Range,
			Values: u.Values,
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	_, err := c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return wrapAccessError(fmt.Errorf("failed to batch update values: %w", err))
	}

	return nil
}

// SheetIDByName resolves a sheet tab's structural identifier from its
// display name.
func (c *Client) SheetIDByName(ctx context.Context, spreadsheetID, sheetName string) (int64, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, wrapAccessError(fmt.Errorf("failed to get spreadsheet: %w", err))
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, fmt.Errorf("sheet %q not found in spreadsheet", sheetName)
}

// DeleteRowSpan removes exactly one row from the sheet's row dimension.
// rowNumber is 1-based; the API range is half-open and 0-indexed.
func (c *Client) DeleteRowSpan(ctx context.Context, spreadsheetID, sheetName string, rowNumber int) error {
	sheetID, err := c.SheetIDByName(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(rowNumber - 1),
						EndIndex:   int64(rowNumber),
					},
				},
			},
		},
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return wrapAccessError(fmt.Errorf("failed to delete row %d: %w", rowNumber, err))
	}

	return nil
}

// SetCellTextColor sets the foreground color of a single cell, addressed as
// a column letter plus 1-based row number (e.g. "A12").
func (c *Client) SetCellTextColor(ctx context.Context, spreadsheetID, sheetName, cell string, red, green, blue float64) error {
	sheetID, err := c.SheetIDByName(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}

	column, row, err := splitCellRef(cell)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    int64(row - 1),
						EndRowIndex:      int64(row),
						StartColumnIndex: int64(column),
						EndColumnIndex:   int64(column + 1),
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{
								ForegroundColor: &sheets.Color{
									Red:   red,
									Green: green,
									Blue:  blue,
								},
							},
						},
					},
					Fields: "userEnteredFormat.textFormat.foregroundColor",
				},
			},
		},
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return wrapAccessError(fmt.Errorf("failed to set text color for %s: %w", cell, err))
	}

	return nil
}

// VerifySheetAccess checks that the spreadsheet is reachable and the named
// sheet tab exists.
func (c *Client) VerifySheetAccess(ctx context.Context, spreadsheetID, sheetName string) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return wrapAccessError(fmt.Errorf("failed to access spreadsheet: %w", err))
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return nil
		}
	}

	return fmt.Errorf("sheet %q not found in the spreadsheet", sheetName)
}

// splitCellRef splits an A1 cell reference into a 0-based column index and
// a 1-based row number.
func splitCellRef(cell string) (int, int, error) {
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(cell) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
	}

	column := 0
	for _, ch := range cell[:i] {
		column = column*26 + int(ch-'A') + 1
	}

	row := 0
	for _, ch := range cell[i:] {
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
		}
		row = row*10 + int(ch-'0')
	}
	if row == 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
	}

	return column - 1, row, nil
}

// ExtractSpreadsheetID extracts the spreadsheet ID from a full Google
// Sheets URL, or returns the input unchanged when it is already a bare ID.
func ExtractSpreadsheetID(urlOrID string) (string, error) {
	if !strings.Contains(urlOrID, "/") {
		return urlOrID, nil
	}

	// Format: https://docs.google.com/spreadsheets/d/{ID}/edit...
	_, after, found := strings.Cut(urlOrID, "/d/")
	if !found {
		return "", fmt.Errorf("invalid Google Sheets URL format")
	}

	id, _, _ := strings.Cut(after, "/")
	if id == "" {
		return "", fmt.Errorf("could not extract spreadsheet ID from URL")
	}

	return id, nil
}
