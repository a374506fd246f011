package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/commands"
	"resale_ledger/internal/sheets"
)

const helpText = `Commands:
  /setup      register your Google Sheet
  /add        add a product to inventory
  /inventory  list your inventory
  /edit       edit a product
  /remove     remove a product
  /sold       record a sale
  /editsale   edit a sale
  /removesale remove a sale
  /ask        ask a question about your records
  /help       show this help
  /quit       exit`

// Run drives the command loop until EOF, /quit, or context cancellation.
func Run(ctx context.Context, c *Console, h *commands.Handler, userID string) error {
	sess := commands.Session{UserID: userID, UI: c}
	fmt.Fprintln(c.out, "Resale ledger ready. Type /help for commands.")

	for {
		fmt.Fprint(c.out, "\n> ")
		line, err := c.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var cmdErr error
		switch strings.ToLower(line) {
		case "":
			continue
		case "/setup":
			cmdErr = h.Setup(ctx, sess)
		case "/add":
			cmdErr = h.AddProduct(ctx, sess)
		case "/inventory":
			cmdErr = h.ListInventory(ctx, sess)
		case "/edit":
			cmdErr = h.EditProduct(ctx, sess)
		case "/remove":
			cmdErr = h.RemoveProduct(ctx, sess)
		case "/sold":
			cmdErr = h.RecordSale(ctx, sess)
		case "/editsale":
			cmdErr = h.EditSale(ctx, sess)
		case "/removesale":
			cmdErr = h.RemoveSale(ctx, sess)
		case "/ask":
			cmdErr = h.Ask(ctx, sess)
		case "/help":
			fmt.Fprintln(c.out, helpText)
		case "/quit", "/exit":
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command %q. Type /help for commands.\n", line)
		}

		if cmdErr != nil {
			reportError(ctx, c, cmdErr)
		}
	}
}

// reportError turns an internal failure into readable text for the user.
func reportError(ctx context.Context, c *Console, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return
	}
	// The user was already told to run /setup.
	if errors.Is(err, commands.ErrNotRegistered) {
		return
	}
	log.Error().Err(err).Msg("command failed")

	var accessErr *sheets.AccessError
	if errors.As(err, &accessErr) {
		_ = c.Send(ctx, accessErr.Remediation)
		return
	}
	_ = c.Send(ctx, fmt.Sprintf("Something went wrong: %v", err))
}
