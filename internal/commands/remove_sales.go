package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
)

// RemoveSale deletes a sale row after confirmation, with the same
// expiring confirmation as RemoveProduct.
func (h *Handler) RemoveSale(ctx context.Context, sess Session) error {
	reg, err := h.registration(ctx, sess)
	if err != nil || reg == nil {
		return err
	}

	ref := salesRef(reg)
	sales, err := h.Ledger.ReadSales(ctx, ref, records.DefaultStartRow)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		return sess.UI.Send(ctx, "No sales recorded yet! Nothing to remove.")
	}

	record, ok, err := h.selectSaleRecord(ctx, sess, sales, "Which sale do you want to remove?")
	if err != nil || !ok {
		return err
	}

	confirmCtx, cancel := context.WithTimeout(ctx, ConfirmTimeout)
	defer cancel()
	confirmed, err := sess.UI.Confirm(confirmCtx, fmt.Sprintf(
		"Remove the sale of %d x **%s** on %s?\nThis deletes the whole row and cannot be undone.",
		record.QuantitySold, record.ProductName, record.SoldDate))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
	if !confirmed {
		return sess.UI.Send(ctx, "Deletion cancelled.")
	}

	if err := h.Ledger.DeleteSaleRow(ctx, ref, record.RowPosition, record.ProductName); err != nil {
		if errors.Is(err, ledger.ErrRowMismatch) {
			return sess.UI.Send(ctx, "The Sales sheet changed since you loaded it. Nothing was deleted; please run the command again.")
		}
		return err
	}

	log.Info().
		Str("user_id", sess.UserID).
		Int("row", record.RowPosition).
		Str("product", record.ProductName).
		Msg("sale removed")

	return sess.UI.Send(ctx, fmt.Sprintf("Removed the sale of **%s**.", record.ProductName))
}
