package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/records"
)

// EditProduct edits an inventory record in place. The form is pre-filled
// with current values; only fields that both changed and validated are
// written back, so an untouched form never touches the sheet.
func (h *Handler) EditProduct(ctx context.Context, sess Session) error {
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
		return sess.UI.Send(ctx, "Your inventory is empty! Use /add to add products first.")
	}

	record, ok, err := h.selectInventoryRecord(ctx, sess, inventory, "Which product do you want to edit?")
	if err != nil || !ok {
		return err
	}

	answers, err := sess.UI.PromptForm(ctx, Form{
		Title: fmt.Sprintf("Edit: %s", record.ProductName),
		Fields: []FormField{
			{Name: "name", Label: "Product Name", Default: record.ProductName},
			{Name: "date", Label: "Date Purchased (MM/DD/YYYY)", Default: record.DatePurchased},
			{Name: "quantity", Label: "Quantity Purchased", Default: strconv.Itoa(record.QtyPurchased)},
			{Name: "cost", Label: "Cost Per Unit", Default: fmt.Sprintf("%.2f", record.CostPerUnit)},
			{Name: "tax", Label: "Total Tax Paid", Default: fmt.Sprintf("%.2f", record.TaxTotal)},
		},
	})
	if err != nil {
		return err
	}

	changed := map[records.Field]string{}

	if name := answers["name"]; name != "" && name != record.ProductName {
		changed[records.FieldProductName] = name
	}
	if date := answers["date"]; date != "" && date != record.DatePurchased {
		if err := validateDate("Date Purchased", date); err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		changed[records.FieldDatePurchased] = date
	}
	if raw := answers["quantity"]; raw != "" {
		quantity, err := validateNonNegativeInt("Quantity", raw)
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		if quantity != record.QtyPurchased {
			changed[records.FieldQuantity] = strconv.Itoa(quantity)
		}
	}
	if raw := answers["cost"]; raw != "" {
		cost, err := validateMoney("Cost", raw)
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		if cost != record.CostPerUnit {
			changed[records.FieldCostPerUnit] = fmt.Sprintf("%.2f", cost)
		}
	}
	if raw := answers["tax"]; raw != "" {
		tax, err := validateMoney("Tax", raw)
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		if tax != record.TaxTotal {
			changed[records.FieldTax] = fmt.Sprintf("%.2f", tax)
		}
	}

	result, err := h.Ledger.WriteFields(ctx, ref, record.RowPosition, changed, records.InventoryColumns)
	if err != nil {
		return err
	}
	if !result.Applied {
		return sess.UI.Send(ctx, "No changes were made.")
	}

	log.Info().
		Str("user_id", sess.UserID).
		Int("row", record.RowPosition).
		Int("fields", len(changed)).
		Msg("product edited")

	return sess.UI.Send(ctx, fmt.Sprintf(
		"Updated **%s**: %d field(s) changed on row %d.",
		record.ProductName, len(changed), record.RowPosition))
}
