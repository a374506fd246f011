package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/ai"
	"resale_ledger/internal/records"
)

const maxQuestionLength = 500

// Ask answers a free-form question about the user's records. Both sheets
// are read in full and handed to the analyst; long answers are delivered
// in transport-sized chunks.
func (h *Handler) Ask(ctx context.Context, sess Session) error {
	reg, err := h.registration(ctx, sess)
	if err != nil || reg == nil {
		return err
	}

	answers, err := sess.UI.PromptForm(ctx, Form{
		Title: "Ask About Your Inventory",
		Fields: []FormField{
			{Name: "question", Label: "Question", Placeholder: "What was my most profitable month?", Required: true},
		},
	})
	if err != nil {
		return err
	}
	question := answers["question"]
	if len(question) > maxQuestionLength {
		return sess.UI.Send(ctx, fmt.Sprintf("Questions are limited to %d characters.", maxQuestionLength))
	}

	if err := sess.UI.Send(ctx, "Analyzing your records..."); err != nil {
		return err
	}

	inventory, err := h.Ledger.ReadInventory(ctx, inventoryRef(reg), records.DefaultStartRow)
	if err != nil {
		return err
	}
	sales, err := h.Ledger.ReadSales(ctx, salesRef(reg), records.DefaultStartRow)
	if err != nil {
		return err
	}

	answer, err := h.Analyst.Ask(ctx, inventory, sales, question)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("analysis failed")
		return sess.UI.Send(ctx, "Sorry, I couldn't analyze your records right now. Please try again later.")
	}

	full := fmt.Sprintf("**Question:** %s\n\n**Answer:**\n%s", question, answer)
	for _, chunk := range ai.ChunkAnswer(full, ai.AnswerChunkSize) {
		if err := sess.UI.Send(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}
