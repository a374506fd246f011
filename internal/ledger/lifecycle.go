package ledger

import (
	"context"
	"fmt"

	"resale_ledger/internal/records"
	"resale_ledger/internal/sheets"

	"github.com/rs/zerolog/log"
)

// CreateRow asks the external row-insertion operation to structurally
// insert a new row (above the totals row) and returns its 1-based
// position. Nothing is written to the row here.
func (s *Service) CreateRow(ctx context.Context, ref SheetRef, opName string) (int, error) {
	rowNumber, err := s.inserter.InsertRow(ctx, ref.SpreadsheetID, ref.SheetName, opName)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRowCreation, err)
	}

	log.Debug().
		Str("sheet", ref.SheetName).
		Int("row", rowNumber).
		Msg("Created new row")

	return rowNumber, nil
}

// FinalizeNewRecord stamps a freshly created inventory row with its
// identity: the opaque id in its column (then concealed by matching the
// text color to the white cell background), and a HYPERLINK formula in
// the display-name column linking to the record's dashboard page.
func (s *Service) FinalizeNewRecord(ctx context.Context, ref SheetRef, rowNumber int, id, displayName, dashboardURL string) error {
	idColumn := records.InventoryColumns[records.FieldID]
	nameColumn := records.InventoryColumns[records.FieldProductName]

	formula := fmt.Sprintf("=HYPERLINK(%q, %q)", dashboardURL, displayName)
	updates := []sheets.ValueUpdate{
		{
			Range:  cellRef(ref.SheetName, idColumn, rowNumber),
			Values: [][]interface{}{{id}},
		},
		{
			Range:  cellRef(ref.SheetName, nameColumn, rowNumber),
			Values: [][]interface{}{{formula}},
		},
	}
	if err := s.api.BatchUpdateValues(ctx, ref.SpreadsheetID, updates); err != nil {
		return fmt.Errorf("failed to finalize row %d: %w", rowNumber, err)
	}

	idCell := fmt.Sprintf("%s%d", idColumn, rowNumber)
	if err := s.api.SetCellTextColor(ctx, ref.SpreadsheetID, ref.SheetName, idCell, 1.0, 1.0, 1.0); err != nil {
		return fmt.Errorf("failed to conceal id cell %s: %w", idCell, err)
	}

	log.Debug().
		Int("row", rowNumber).
		Str("id", id).
		Msg("Finalized new record")

	return nil
}

// DeleteInventoryRow removes one inventory row. When the record carried an
// id at read time, the row's id cell is re-read immediately before the
// delete and compared; a mismatch means rows shifted since the read, and
// the delete fails closed. Legacy rows without an id skip the check.
func (s *Service) DeleteInventoryRow(ctx context.Context, ref SheetRef, rowNumber int, expectID string) error {
	idColumn := records.InventoryColumns[records.FieldID]
	if err := s.verifyCell(ctx, ref, idColumn, rowNumber, expectID); err != nil {
		return err
	}
	return s.deleteRow(ctx, ref, rowNumber)
}

// DeleteSaleRow removes one sales row. Sales rows carry no opaque id, so
// the product-name cell serves as the identity check instead.
func (s *Service) DeleteSaleRow(ctx context.Context, ref SheetRef, rowNumber int, expectProductName string) error {
	nameColumn := records.SalesColumns[records.FieldProductName]
	if err := s.verifyCell(ctx, ref, nameColumn, rowNumber, expectProductName); err != nil {
		return err
	}
	return s.deleteRow(ctx, ref, rowNumber)
}

func (s *Service) deleteRow(ctx context.Context, ref SheetRef, rowNumber int) error {
	if err := s.api.DeleteRowSpan(ctx, ref.SpreadsheetID, ref.SheetName, rowNumber); err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}

	log.Info().
		Str("sheet", ref.SheetName).
		Int("row", rowNumber).
		Msg("Deleted row")

	return nil
}

// verifyCell re-reads one cell and compares it to the value captured at
// read time. An empty expectation skips the check.
func (s *Service) verifyCell(ctx context.Context, ref SheetRef, column string, rowNumber int, expect string) error {
	if expect == "" {
		return nil
	}

	values, err := s.api.ReadRange(ctx, ref.SpreadsheetID, cellRef(ref.SheetName, column, rowNumber))
	if err != nil {
		return fmt.Errorf("failed to verify row %d: %w", rowNumber, err)
	}

	got := ""
	if len(values) > 0 && len(values[0]) > 0 {
		got = cellString(values[0][0])
	}

	if got != expect {
		log.Warn().
			Int("row", rowNumber).
			Str("expected", expect).
			Str("found", got).
			Msg("Row identity mismatch, refusing to delete")
		return fmt.Errorf("%w: row %d", ErrRowMismatch, rowNumber)
	}

	return nil
}
