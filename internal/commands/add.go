package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
	"resale_ledger/internal/script"
)

// AddProduct runs the three-step guided add flow: base purchase facts,
// then a store selection, then optional extras. Nothing touches the
// sheet until every step has passed validation; an abort at any step
// leaves the sheet untouched.
func (h *Handler) AddProduct(ctx context.Context, sess Session) error {
	reg, err := h.registration(ctx, sess)
	if err != nil || reg == nil {
		return err
	}

	base, err := sess.UI.PromptForm(ctx, Form{
		Title: "Add Product (1/3)",
		Fields: []FormField{
			{Name: "name", Label: "Product Name", Required: true},
			{Name: "date", Label: "Date Purchased (MM/DD/YYYY)", Placeholder: "01/15/2025", Required: true},
			{Name: "quantity", Label: "Quantity Purchased", Placeholder: "1", Required: true},
			{Name: "cost", Label: "Cost Per Unit", Placeholder: "19.99", Required: true},
			{Name: "tax", Label: "Total Tax Paid", Placeholder: "1.60", Required: true},
		},
	})
	if err != nil {
		return err
	}

	if err := validateDate("Date Purchased", base["date"]); err != nil {
		return sess.UI.Send(ctx, err.Error())
	}
	quantity, err := validatePositiveInt("Quantity", base["quantity"])
	if err != nil {
		return sess.UI.Send(ctx, err.Error())
	}
	cost, err := validateMoney("Cost", base["cost"])
	if err != nil {
		return sess.UI.Send(ctx, err.Error())
	}
	tax, err := validateMoney("Tax", base["tax"])
	if err != nil {
		return sess.UI.Send(ctx, err.Error())
	}

	selectCtx, cancel := context.WithTimeout(ctx, SelectTimeout)
	defer cancel()
	storeOptions := make([]Option, len(records.StoreOptions))
	for i, name := range records.StoreOptions {
		storeOptions[i] = Option{Label: name}
	}
	chosen, err := sess.UI.Select(selectCtx, "Add Product (2/3): where was it purchased?", storeOptions)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
	storeName := records.StoreOptions[chosen]

	extras, err := sess.UI.PromptForm(ctx, Form{
		Title: "Add Product (3/3)",
		Fields: []FormField{
			{Name: "links", Label: "Listing Links (optional)"},
			{Name: "retail", Label: "Retail Price Per Unit (optional)", Placeholder: "29.99"},
		},
	})
	if err != nil {
		return err
	}
	var retail float64
	if extras["retail"] != "" {
		retail, err = validateMoney("Retail Price", extras["retail"])
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
	}

	ref := inventoryRef(reg)
	row, err := h.Ledger.CreateRow(ctx, ref, script.InsertInventoryRowOp)
	if err != nil {
		if errors.Is(err, ledger.ErrRowCreation) {
			return sess.UI.Send(ctx, "Failed to create a new row in Google Sheets. Make sure the row-insert script is deployed for your spreadsheet.")
		}
		return err
	}

	id := uuid.NewString()
	fields := map[records.Field]string{
		records.FieldID:            id,
		records.FieldProductName:   base["name"],
		records.FieldDatePurchased: base["date"],
		records.FieldQuantity:      fmt.Sprintf("%d", quantity),
		records.FieldStore:         storeName,
		records.FieldLinks:         extras["links"],
		records.FieldCostPerUnit:   fmt.Sprintf("%.2f", cost),
		records.FieldTax:           fmt.Sprintf("%.2f", tax),
	}
	if extras["retail"] != "" {
		fields[records.FieldRetailPrice] = fmt.Sprintf("%.2f", retail)
	}
	if _, err := h.Ledger.WriteFields(ctx, ref, row, fields, records.InventoryColumns); err != nil {
		return err
	}

	dashboardURL := fmt.Sprintf("%s/product/%s?s=%s", h.DashboardBaseURL, id, ref.SpreadsheetID)
	if err := h.Ledger.FinalizeNewRecord(ctx, ref, row, id, base["name"], dashboardURL); err != nil {
		return err
	}

	log.Info().
		Str("user_id", sess.UserID).
		Int("row", row).
		Str("record_id", id).
		Msg("product added")

	return sess.UI.Send(ctx, fmt.Sprintf(
		"Added **%s** (qty %d at $%.2f each) from %s on row %d.",
		base["name"], quantity, cost, storeName, row))
}
