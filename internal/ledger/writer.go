package ledger

import (
	"context"
	"fmt"

	"resale_ledger/internal/records"
	"resale_ledger/internal/sheets"

	"github.com/rs/zerolog/log"
)

// WriteResult distinguishes an applied write from the defined no-op case.
// A no-op is not a failure: the call was valid but every field was dropped
// by the mapping, so nothing was sent to the sheet.
type WriteResult struct {
	Applied bool
	Cells   int
}

// WriteFields writes the given field values into one row as a single
// batched cell update. Fields absent from the mapping are silently
// dropped. If nothing survives the mapping the result is a no-op and no
// network call is made; callers must branch on Applied to report "no
// changes made".
func (s *Service) WriteFields(ctx context.Context, ref SheetRef, rowNumber int, fields map[records.Field]string, mapping records.Mapping) (WriteResult, error) {
	var updates []sheets.ValueUpdate
	for field, value := range fields {
		column, ok := mapping[field]
		if !ok {
			log.Debug().
				Str("field", string(field)).
				Msg("Dropping unmapped field")
			continue
		}
		updates = append(updates, sheets.ValueUpdate{
			Range:  cellRef(ref.SheetName, column, rowNumber),
			Values: [][]interface{}{{value}},
		})
	}

	if len(updates) == 0 {
		return WriteResult{}, nil
	}

	if err := s.api.BatchUpdateValues(ctx, ref.SpreadsheetID, updates); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write row %d: %w", rowNumber, err)
	}

	log.Debug().
		Int("row", rowNumber).
		Int("cells", len(updates)).
		Msg("Wrote row fields")

	return WriteResult{Applied: true, Cells: len(updates)}, nil
}
