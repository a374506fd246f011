package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/records"
)

// EditSale edits a sale record in place, mirroring EditProduct: a
// pre-filled form, a changed-and-valid partial write, and a "no changes"
// notice when nothing differs.
func (h *Handler) EditSale(ctx context.Context, sess Session) error {
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
		return sess.UI.Send(ctx, "No sales recorded yet! Use /sold to record one first.")
	}

	record, ok, err := h.selectSaleRecord(ctx, sess, sales, "Which sale do you want to edit?")
	if err != nil || !ok {
		return err
	}

	answers, err := sess.UI.PromptForm(ctx, Form{
		Title: fmt.Sprintf("Edit Sale: %s", record.ProductName),
		Fields: []FormField{
			{Name: "date", Label: "Date Sold (MM/DD/YYYY)", Default: record.SoldDate},
			{Name: "quantity", Label: "Quantity Sold", Default: strconv.Itoa(record.QuantitySold)},
			{Name: "price", Label: "Sale Price Per Unit", Default: fmt.Sprintf("%.2f", record.PricePerUnit)},
			{Name: "shipping", Label: "Shipping Cost", Default: fmt.Sprintf("%.2f", record.ShippingCost)},
		},
	})
	if err != nil {
		return err
	}

	changed := map[records.Field]string{}

	if date := answers["date"]; date != "" && date != record.SoldDate {
		if err := validateDate("Date Sold", date); err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		changed[records.FieldSoldDate] = date
	}
	if raw := answers["quantity"]; raw != "" {
		quantity, err := validatePositiveInt("Quantity Sold", raw)
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		if quantity != record.QuantitySold {
			changed[records.FieldQuantitySold] = strconv.Itoa(quantity)
		}
	}
	if raw := answers["price"]; raw != "" {
		price, err := validateMoney("Sale Price", raw)
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		if price != record.PricePerUnit {
			changed[records.FieldPricePerUnit] = fmt.Sprintf("%.2f", price)
		}
	}
	if raw := answers["shipping"]; raw != "" {
		shipping, err := validateMoney("Shipping Cost", raw)
		if err != nil {
			return sess.UI.Send(ctx, err.Error())
		}
		if shipping != record.ShippingCost {
			changed[records.FieldShippingCost] = fmt.Sprintf("%.2f", shipping)
		}
	}

	result, err := h.Ledger.WriteFields(ctx, ref, record.RowPosition, changed, records.SalesColumns)
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
		Msg("sale edited")

	return sess.UI.Send(ctx, fmt.Sprintf(
		"Updated sale of **%s**: %d field(s) changed on row %d.",
		record.ProductName, len(changed), record.RowPosition))
}
