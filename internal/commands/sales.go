package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
	"resale_ledger/internal/script"
)

// RecordSale records a sale against an existing inventory record: pick
// the product, then fill one modal with the sale facts. The sale lands
// on a fresh row of the Sales sheet; inventory totals recompute in the
// spreadsheet itself.
func (h *Handler) RecordSale(ctx context.Context, sess Session) error {
	reg, err := h.registration(ctx, sess)
	if err != nil || reg == nil {
		return err
	}

	invRef := inventoryRef(reg)
	inventory, err := h.Ledger.ReadInventory(ctx, invRef, records.DefaultStartRow)
	if err != nil {
		return err
	}
	if len(inventory) == 0 {
		return sess.UI.Send(ctx, "Your inventory is empty! Use /add to add products first.")
	}

	record, ok, err := h.selectInventoryRecord(ctx, sess, inventory, "Which product did you sell?")
	if err != nil || !ok {
		return err
	}

	answers, err := sess.UI.PromptForm(ctx, Form{
		Title: fmt.Sprintf("Record Sale: %s", record.ProductName),
		Fields: []FormField{
			{Name: "date", Label: "Date Sold (MM/DD/YYYY)", Placeholder: "01/15/2025", Required: true},
			{Name: "quantity", Label: "Quantity Sold", Placeholder: "1", Required: true},
			{Name: "price", Label: "Sale Price Per Unit", Placeholder: "24.99", Required: true},
			{Name: "shipping", Label: "Shipping Cost", Placeholder: "4.50", Required: true},
		},
	})
	if err != nil {
		return err
	}

	if err := validateDate("Date Sold", answers["date"]); err != nil {
		return sess.UI.Send(ctx, err.Error())
	}
	quantity, err := validatePositiveInt("Quantity Sold", answers["quantity"])
	if err != nil {
		return sess.UI.Send(ctx, err.Error())
	}
	price, err := validateMoney("Sale Price", answers["price"])
	if err != nil {
		return sess.UI.Send(ctx, err.Error())
	}
	shipping, err := validateMoney("Shipping Cost", answers["shipping"])
	if err != nil {
		return sess.UI.Send(ctx, err.Error())
	}

	saleRef := salesRef(reg)
	row, err := h.Ledger.CreateRow(ctx, saleRef, script.InsertSaleRowOp)
	if err != nil {
		if errors.Is(err, ledger.ErrRowCreation) {
			return sess.UI.Send(ctx, "Failed to create a new row in the Sales sheet. Make sure the row-insert script is deployed for your spreadsheet.")
		}
		return err
	}

	fields := map[records.Field]string{
		records.FieldProductName:  record.ProductName,
		records.FieldSoldDate:     answers["date"],
		records.FieldQuantitySold: fmt.Sprintf("%d", quantity),
		records.FieldPricePerUnit: fmt.Sprintf("%.2f", price),
		records.FieldShippingCost: fmt.Sprintf("%.2f", shipping),
	}
	if _, err := h.Ledger.WriteFields(ctx, saleRef, row, fields, records.SalesColumns); err != nil {
		return err
	}

	log.Info().
		Str("user_id", sess.UserID).
		Int("row", row).
		Str("product", record.ProductName).
		Msg("sale recorded")

	return sess.UI.Send(ctx, fmt.Sprintf(
		"Recorded sale of %d x **%s** at $%.2f each ($%.2f total) on row %d of the Sales sheet.",
		quantity, record.ProductName, price, float64(quantity)*price, row))
}

// selectInventoryRecord presents up to 25 inventory records and returns
// the chosen one. ok is false when the selection expired unused.
func (h *Handler) selectInventoryRecord(ctx context.Context, sess Session, inventory []records.InventoryRecord, prompt string) (records.InventoryRecord, bool, error) {
	shown := inventory
	if len(shown) > maxSelectOptions {
		shown = shown[:maxSelectOptions]
		if err := sess.UI.Send(ctx, fmt.Sprintf("Showing the first %d of %d products.", maxSelectOptions, len(inventory))); err != nil {
			return records.InventoryRecord{}, false, err
		}
	}

	options := make([]Option, len(shown))
	for i, rec := range shown {
		options[i] = Option{
			Label:       rec.ProductName,
			Description: fmt.Sprintf("Qty: %d | Cost: $%.2f", rec.QtyAvailable, rec.CostPerUnit),
		}
	}

	selectCtx, cancel := context.WithTimeout(ctx, SelectTimeout)
	defer cancel()
	chosen, err := sess.UI.Select(selectCtx, prompt, options)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return records.InventoryRecord{}, false, nil
		}
		return records.InventoryRecord{}, false, err
	}
	return shown[chosen], true, nil
}

// selectSaleRecord is the sales-sheet counterpart of selectInventoryRecord.
func (h *Handler) selectSaleRecord(ctx context.Context, sess Session, sales []records.SaleRecord, prompt string) (records.SaleRecord, bool, error) {
	shown := sales
	if len(shown) > maxSelectOptions {
		shown = shown[:maxSelectOptions]
		if err := sess.UI.Send(ctx, fmt.Sprintf("Showing the first %d of %d sales.", maxSelectOptions, len(sales))); err != nil {
			return records.SaleRecord{}, false, err
		}
	}

	options := make([]Option, len(shown))
	for i, rec := range shown {
		options[i] = Option{
			Label:       rec.ProductName,
			Description: fmt.Sprintf("Sold %s | Qty: %d | $%.2f each", rec.SoldDate, rec.QuantitySold, rec.PricePerUnit),
		}
	}

	selectCtx, cancel := context.WithTimeout(ctx, SelectTimeout)
	defer cancel()
	chosen, err := sess.UI.Select(selectCtx, prompt, options)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return records.SaleRecord{}, false, nil
		}
		return records.SaleRecord{}, false, err
	}
	return shown[chosen], true, nil
}
