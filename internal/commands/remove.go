package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
)

// RemoveProduct deletes an inventory row after an explicit confirmation.
// The confirmation expires after a minute; once expired, a click does
// nothing and the row stays.
func (h *Handler) RemoveProduct(ctx context.Context, sess Session) error {
	reg, err := h.registration(ctx, sess)
	if err != nil || reg == nil {
		return err
	}

	ref := inventoryRef(reg)
	inventory, err := h.Ledger.ReadInventory(ctx, ref, records.DefaultStartRow)
	if err != nil {
		return err
	}
	if len(inventory) == 0 {
		return sess.UI.Send(ctx, "Your inventory is empty! Nothing to remove.")
	}

	record, ok, err := h.selectInventoryRecord(ctx, sess, inventory, "Which product do you want to remove?")
	if err != nil || !ok {
		return err
	}

	confirmCtx, cancel := context.WithTimeout(ctx, ConfirmTimeout)
	defer cancel()
	confirmed, err := sess.UI.Confirm(confirmCtx, fmt.Sprintf(
		"Remove **%s** (qty %d, purchased %s, $%.2f each)?\nThis deletes the whole row and cannot be undone.",
		record.ProductName, record.QtyPurchased, record.DatePurchased, record.CostPerUnit))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
	if !confirmed {
		return sess.UI.Send(ctx, "Deletion cancelled.")
	}

	if err := h.Ledger.DeleteInventoryRow(ctx, ref, record.RowPosition, record.ID); err != nil {
		if errors.Is(err, ledger.ErrRowMismatch) {
			return sess.UI.Send(ctx, "The sheet changed since you loaded it. Nothing was deleted; please run the command again.")
		}
		return err
	}

	log.Info().
		Str("user_id", sess.UserID).
		Int("row", record.RowPosition).
		Str("record_id", record.ID).
		Msg("product removed")

	return sess.UI.Send(ctx, fmt.Sprintf("Removed **%s** from your inventory.", record.ProductName))
}
