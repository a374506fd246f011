package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/sheets"
	"resale_ledger/internal/store"
)

// Setup registers (or re-registers) the user's spreadsheet. Access is
// verified before anything is persisted, so a registration always points
// at a sheet the service account could read at registration time.
func (h *Handler) Setup(ctx context.Context, sess Session) error {
	answers, err := sess.UI.PromptForm(ctx, Form{
		Title: "Set Up Your Google Sheet",
		Fields: []FormField{
			{Name: "url", Label: "Spreadsheet URL or ID", Placeholder: "https://docs.google.com/spreadsheets/d/...", Required: true},
			{Name: "sheet", Label: "Sheet tab name", Placeholder: "Inventory", Required: true},
		},
	})
	if err != nil {
		return err
	}

	spreadsheetID, err := sheets.ExtractSpreadsheetID(answers["url"])
	if err != nil {
		return sess.UI.Send(ctx, "That doesn't look like a spreadsheet URL or ID. Please try again.")
	}
	sheetName := answers["sheet"]

	if err := h.Verifier.VerifySheetAccess(ctx, spreadsheetID, sheetName); err != nil {
		var accessErr *sheets.AccessError
		if errors.As(err, &accessErr) {
			return sess.UI.Send(ctx, accessErr.Remediation)
		}
		return err
	}

	if err := store.UpsertRegistration(ctx, h.DB, sess.UserID, spreadsheetID, sheetName); err != nil {
		return err
	}

	log.Info().
		Str("user_id", sess.UserID).
		Str("spreadsheet_id", spreadsheetID).
		Msg("user registered spreadsheet")

	return sess.UI.Send(ctx, fmt.Sprintf(
		"Setup complete! Your commands now read and write sheet %q of spreadsheet `%s`.",
		sheetName, spreadsheetID))
}
