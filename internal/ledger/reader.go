package ledger

import (
	"context"
	"fmt"

	"resale_ledger/internal/records"

	"github.com/rs/zerolog/log"
)

// anchorColumn holds the product names and doubles as the row-existence
// sentinel: a row with an empty anchor cell is structurally empty.
const anchorColumn = "B"

// lastOccupiedRow probes the anchor column's full extent to find the last
// occupied row of the sheet.
func (s *Service) lastOccupiedRow(ctx context.Context, ref SheetRef) (int, error) {
	values, err := s.api.ReadRange(ctx, ref.SpreadsheetID, fmt.Sprintf("%s!%s:%s", ref.SheetName, anchorColumn, anchorColumn))
	if err != nil {
		return 0, fmt.Errorf("failed to probe last row: %w", err)
	}
	return len(values), nil
}

// ReadInventory reads and decodes all inventory rows from startRow up to
// (but excluding) the totals row. Structurally empty rows are dropped, but
// every record's RowPosition is computed from its original row index so
// mutation always addresses the true backing-store row.
func (s *Service) ReadInventory(ctx context.Context, ref SheetRef, startRow int) ([]records.InventoryRecord, error) {
	lastRow, err := s.lastOccupiedRow(ctx, ref)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("sheet", ref.SheetName).
		Int("last_row", lastRow).
		Int("start_row", startRow).
		Msg("Reading inventory")

	if lastRow < startRow {
		return nil, nil
	}

	// The last occupied row is the running total; read up to the row before it.
	readRange := fmt.Sprintf("%s!A%d:T%d", ref.SheetName, startRow, lastRow-1)
	values, err := s.api.ReadRange(ctx, ref.SpreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	var items []records.InventoryRecord
	for i, raw := range values {
		rowNumber := startRow + i
		row := padRow(raw, records.InventoryColumnCount)

		if row[1] == "" { // anchor cell: product name
			log.Debug().Int("row", rowNumber).Msg("Skipping row with empty product name")
			continue
		}

		items = append(items, records.DecodeInventoryRow(row, rowNumber))
	}

	log.Debug().
		Int("total_rows", len(values)).
		Int("items", len(items)).
		Msg("Finished reading inventory")

	return items, nil
}

// ReadSales reads and decodes all sales rows, with the same row-position
// and empty-row semantics as ReadInventory.
func (s *Service) ReadSales(ctx context.Context, ref SheetRef, startRow int) ([]records.SaleRecord, error) {
	lastRow, err := s.lastOccupiedRow(ctx, ref)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("sheet", ref.SheetName).
		Int("last_row", lastRow).
		Int("start_row", startRow).
		Msg("Reading sales")

	if lastRow < startRow {
		return nil, nil
	}

	readRange := fmt.Sprintf("%s!B%d:J%d", ref.SheetName, startRow, lastRow-1)
	values, err := s.api.ReadRange(ctx, ref.SpreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales: %w", err)
	}

	var sales []records.SaleRecord
	for i, raw := range values {
		rowNumber := startRow + i
		row := padRow(raw, records.SalesColumnCount)

		if row[0] == "" { // anchor cell: product name
			log.Debug().Int("row", rowNumber).Msg("Skipping sales row with empty product name")
			continue
		}

		sales = append(sales, records.DecodeSaleRow(row, rowNumber))
	}

	log.Debug().
		Int("total_rows", len(values)).
		Int("sales", len(sales)).
		Msg("Finished reading sales")

	return sales, nil
}
