package commands

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
	"resale_ledger/internal/store"
)

// Interactor is the chat transport boundary. Flows collect input and
// report outcomes exclusively through it, so the transport (Discord,
// console, a test fake) stays an external collaborator.
type Interactor interface {
	// PromptForm collects values for the form's fields, keyed by field name.
	PromptForm(ctx context.Context, form Form) (map[string]string, error)
	// Select offers up to 25 options and returns the chosen index.
	Select(ctx context.Context, prompt string, options []Option) (int, error)
	// Confirm asks a two-choice question. It must honor ctx cancellation:
	// after the deadline the control is inert and false is returned.
	Confirm(ctx context.Context, prompt string) (bool, error)
	// Send delivers a message to the user.
	Send(ctx context.Context, message string) error
}

// Form is one input step of a guided flow.
type Form struct {
	Title  string
	Fields []FormField
}

// FormField describes one text input. Default pre-fills the current value
// in edit flows.
type FormField struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
	Default     string
}

// Option is one entry of a selection control.
type Option struct {
	Label       string
	Description string
}

// Control lifetimes. After expiry the control rejects input rather than
// acting on stale state; for deletion the fail-safe default is "do
// nothing".
const (
	SelectTimeout  = 5 * time.Minute
	ConfirmTimeout = 60 * time.Second
)

// maxSelectOptions caps presented records for selection.
const maxSelectOptions = 25

const notRegisteredMessage = "You haven't set up your Google Sheets yet! Use /setup first."

// ErrNotRegistered reports that a command requiring a registration was
// invoked by an unregistered user.
var ErrNotRegistered = errors.New("user is not registered")

// AccessVerifier checks that a spreadsheet is reachable and a sheet tab
// exists. *sheets.Client implements it.
type AccessVerifier interface {
	VerifySheetAccess(ctx context.Context, spreadsheetID, sheetName string) error
}

// Analyst answers a question about the full record sets. *ai.Analyst
// implements it.
type Analyst interface {
	Ask(ctx context.Context, inventory []records.InventoryRecord, sales []records.SaleRecord, question string) (string, error)
}

// Handler owns all chat commands. One instance serves every user; all
// per-interaction state lives on the stack of the command invocation.
type Handler struct {
	DB               *sql.DB
	Ledger           *ledger.Service
	Verifier         AccessVerifier
	Analyst          Analyst
	DashboardBaseURL string
}

// Session identifies the invoking user and the transport to answer on.
type Session struct {
	UserID string
	UI     Interactor
}

// registration fetches the user's registration. An unregistered user has
// already been told to run /setup when ErrNotRegistered comes back.
func (h *Handler) registration(ctx context.Context, sess Session) (*store.Registration, error) {
	reg, err := store.GetRegistration(ctx, h.DB, sess.UserID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		if err := sess.UI.Send(ctx, notRegisteredMessage); err != nil {
			return nil, err
		}
		return nil, ErrNotRegistered
	}
	return reg, nil
}

func inventoryRef(reg *store.Registration) ledger.SheetRef {
	return ledger.SheetRef{SpreadsheetID: reg.SpreadsheetID, SheetName: reg.SheetName}
}

func salesRef(reg *store.Registration) ledger.SheetRef {
	return ledger.SheetRef{SpreadsheetID: reg.SpreadsheetID, SheetName: records.SalesSheetName}
}
