package commands

import (
	"context"
	"fmt"
	"strings"

	"resale_ledger/internal/records"
)

const inventoryPageSize = 10

// ListInventory sends the full inventory as readable pages of ten
// records each.
func (h *Handler) ListInventory(ctx context.Context, sess Session) error {
	reg, err := h.registration(ctx, sess)
	if err != nil || reg == nil {
		return err
	}

	inventory, err := h.Ledger.ReadInventory(ctx, inventoryRef(reg), records.DefaultStartRow)
	if err != nil {
		return err
	}
	if len(inventory) == 0 {
		return sess.UI.Send(ctx, "Your inventory is empty! Use /add to add products first.")
	}

	pages := (len(inventory) + inventoryPageSize - 1) / inventoryPageSize
	for page := 0; page < pages; page++ {
		start := page * inventoryPageSize
		end := start + inventoryPageSize
		if end > len(inventory) {
			end = len(inventory)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "**Your Inventory** (%d items, page %d/%d)\n", len(inventory), page+1, pages)
		for _, rec := range inventory[start:end] {
			fmt.Fprintf(&b, "\n**%s**\n", rec.ProductName)
			fmt.Fprintf(&b, "  Purchased %s from %s | Qty: %d/%d | Cost: $%.2f each",
				rec.DatePurchased, orDash(rec.Store), rec.QtyAvailable, rec.QtyPurchased, rec.CostPerUnit)
			if rec.IsSold {
				b.WriteString(" | SOLD")
			} else if rec.IsListed {
				b.WriteString(" | Listed")
			}
		}
		if err := sess.UI.Send(ctx, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
