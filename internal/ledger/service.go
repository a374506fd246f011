package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resale_ledger/internal/sheets"
)

// SheetAPI is the slice of the spreadsheet collaborator the ledger needs.
// *sheets.Client implements it; tests substitute a fake.
type SheetAPI interface {
	ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)
	BatchUpdateValues(ctx context.Context, spreadsheetID string, updates []sheets.ValueUpdate) error
	DeleteRowSpan(ctx context.Context, spreadsheetID, sheetName string, rowNumber int) error
	SetCellTextColor(ctx context.Context, spreadsheetID, sheetName, cell string, red, green, blue float64) error
}

// RowInserter is the external row-insertion operation. *script.Client
// implements it.
type RowInserter interface {
	InsertRow(ctx context.Context, spreadsheetID, sheetName, functionName string) (int, error)
}

// SheetRef addresses one sheet tab of one user's spreadsheet. Every ledger
// operation is keyed by it.
type SheetRef struct {
	SpreadsheetID string
	SheetName     string
}

// Service reads, writes and manages rows of a user's inventory/sales
// spreadsheet. It holds no state between calls; each command re-reads the
// row range fresh.
type Service struct {
	api      SheetAPI
	inserter RowInserter
}

func NewService(api SheetAPI, inserter RowInserter) *Service {
	return &Service{
		api:      api,
		inserter: inserter,
	}
}

// ErrRowCreation reports that the row-insertion operation did not produce a
// row position. Callers must abort before any field write.
var ErrRowCreation = errors.New("row creation failed")

// ErrRowMismatch reports that a row's identity cell no longer matches the
// value captured at read time; the destructive write was not performed.
var ErrRowMismatch = errors.New("row identity changed since read")

// cellRef builds an A1 reference like "Sheet!B12".
func cellRef(sheetName, column string, rowNumber int) string {
	return fmt.Sprintf("%s!%s%d", sheetName, column, rowNumber)
}

// cellString renders one raw API cell value as trimmed text.
func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// padRow converts a raw API row to strings, padded to width columns.
func padRow(raw []interface{}, width int) []string {
	row := make([]string, width)
	for i := 0; i < width && i < len(raw); i++ {
		row[i] = cellString(raw[i])
	}
	return row
}
