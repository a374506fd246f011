package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resale_ledger/internal/records"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// AnswerChunkSize bounds each displayed answer chunk; chat transports cap
// message length around 2000 characters.
const AnswerChunkSize = 1900

// Analyst forwards a formatted dump of the user's records plus a question
// to the Gemini model and returns its free-form answer. The answer is not
// interpreted beyond chunking for display.
type Analyst struct {
	client *genai.Client
	model  string
}

func NewAnalyst(ctx context.Context, apiKey, model string) (*Analyst, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Analyst{
		client: client,
		model:  model,
	}, nil
}

// Close releases the underlying Gemini client.
func (a *Analyst) Close() error {
	return a.client.Close()
}

// Ask composes the analysis prompt from the full record sets and the
// user's question, and returns the model's text response.
func (a *Analyst) Ask(ctx context.Context, inventory []records.InventoryRecord, sales []records.SaleRecord, question string) (string, error) {
	prompt := buildPrompt(FormatInventory(inventory), FormatSales(sales), question, time.Now())

	log.Debug().
		Int("inventory_items", len(inventory)).
		Int("sales", len(sales)).
		Int("prompt_chars", len(prompt)).
		Msg("Sending analysis prompt")

	model := a.client.GenerativeModel(a.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini returned no response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}

func buildPrompt(inventoryData, salesData, question string, now time.Time) string {
	currentDate := now.Format("01/02/2006")
	return fmt.Sprintf(`You are a helpful financial assistant analyzing a reselling business spreadsheet.

Today's date is: %s

Here is the data from the user's inventory and sales:

%s

%s

IMPORTANT NOTES:
- The inventory data includes total cost (already calculated in spreadsheet)
- The sales data includes net profit and ROI (already calculated in spreadsheet)
- For spending calculations, use the total cost from inventory
- For profit calculations, use the net profit from sales
- Cashback should be subtracted from total spending when relevant
- Items marked as "Sold: Yes" have been fully sold out
- Items marked as "Listed: Yes" are currently listed for sale

When calculating monthly totals:
- Match dates in MM/DD/YYYY format
- For "this month", use %s to determine the current month and year

User's Question: %s

Please provide a clear, concise answer with specific numbers. Show your calculations when relevant. If you need to make assumptions, state them clearly.
`, currentDate, inventoryData, salesData, currentDate, question)
}

// FormatInventory renders the inventory record set as a pipe-separated
// table for model consumption.
func FormatInventory(items []records.InventoryRecord) string {
	if len(items) == 0 {
		return "No inventory data available."
	}

	var sb strings.Builder
	sb.WriteString("INVENTORY DATA:\n")
	sb.WriteString("Product | Date Purchased | Qty Purchased | Qty Available | Store | Cost/Unit | Tax Total | Total Cost | Retail Cost | Cashback | Listed | Sold\n")
	sb.WriteString(strings.Repeat("-", 150) + "\n")

	for _, item := range items {
		fmt.Fprintf(&sb, "%s | %s | %d | %d | %s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | %s | %s\n",
			item.ProductName,
			orNA(item.DatePurchased),
			item.QtyPurchased,
			item.QtyAvailable,
			orNA(item.Store),
			item.CostPerUnit,
			item.TaxTotal,
			item.TotalCost,
			item.RetailPrice,
			item.CashbackTotal,
			yesNo(item.IsListed),
			yesNo(item.IsSold),
		)
	}

	return sb.String()
}

// FormatSales renders the sales record set as a pipe-separated table for
// model consumption.
func FormatSales(sales []records.SaleRecord) string {
	if len(sales) == 0 {
		return "No sales data available."
	}

	var sb strings.Builder
	sb.WriteString("SALES DATA:\n")
	sb.WriteString("Product | Date Sold | Qty Sold | Price/Unit | Total Revenue | Shipping Cost | Net Profit | ROI\n")
	sb.WriteString(strings.Repeat("-", 120) + "\n")

	for _, sale := range sales {
		fmt.Fprintf(&sb, "%s | %s | %d | $%.2f | $%.2f | $%.2f | $%.2f | %.1f%%\n",
			sale.ProductName,
			orNA(sale.SoldDate),
			sale.QuantitySold,
			sale.PricePerUnit,
			sale.TotalRevenue,
			sale.ShippingCost,
			sale.NetProfit,
			sale.ROI,
		)
	}

	return sb.String()
}

// ChunkAnswer splits an answer into display-sized chunks.
func ChunkAnswer(answer string, size int) []string {
	if answer == "" {
		return nil
	}

	var chunks []string
	for len(answer) > size {
		chunks = append(chunks, answer[:size])
		answer = answer[size:]
	}
	return append(chunks, answer)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
