package ai

import (
	"strings"
	"testing"
	"time"

	"resale_ledger/internal/records"
)

func TestFormatInventory(t *testing.T) {
	items := []records.InventoryRecord{
		{
			ProductName:   "Charizard Box",
			DatePurchased: "01/15/2025",
			QtyPurchased:  4,
			QtyAvailable:  3,
			Store:         "Target",
			CostPerUnit:   49.99,
			TaxTotal:      8.0,
			TotalCost:     207.96,
			IsListed:      true,
		},
		{ProductName: "Booster Pack"},
	}

	out := FormatInventory(items)
	for _, want := range []string{
		"INVENTORY DATA:",
		"Charizard Box | 01/15/2025 | 4 | 3 | Target | $49.99 | $8.00 | $207.96",
		"Yes | No",
		"Booster Pack | N/A | 0 | 0 | N/A",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatInventoryEmpty(t *testing.T) {
	if got := FormatInventory(nil); got != "No inventory data available." {
		t.Errorf("got %q", got)
	}
}

func TestFormatSales(t *testing.T) {
	sales := []records.SaleRecord{
		{
			ProductName:  "Charizard Box",
			SoldDate:     "02/01/2025",
			QuantitySold: 2,
			PricePerUnit: 75.0,
			TotalRevenue: 150.0,
			ShippingCost: 9.5,
			NetProfit:    30.51,
			ROI:          27.8,
		},
	}

	out := FormatSales(sales)
	if !strings.Contains(out, "Charizard Box | 02/01/2025 | 2 | $75.00 | $150.00 | $9.50 | $30.51 | 27.8%") {
		t.Errorf("unexpected sales table:\n%s", out)
	}

	if got := FormatSales(nil); got != "No sales data available." {
		t.Errorf("empty sales = %q", got)
	}
}

func TestBuildPromptCarriesDateAndQuestion(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	prompt := buildPrompt("INV", "SALES", "How much did I spend this month?", now)

	if !strings.Contains(prompt, "Today's date is: 03/09/2025") {
		t.Errorf("prompt missing formatted date:\n%s", prompt)
	}
	if !strings.Contains(prompt, "How much did I spend this month?") {
		t.Error("prompt missing question")
	}
	if !strings.Contains(prompt, "INV") || !strings.Contains(prompt, "SALES") {
		t.Error("prompt missing record data")
	}
}

func TestChunkAnswer(t *testing.T) {
	if got := ChunkAnswer("", 10); got != nil {
		t.Errorf("ChunkAnswer(empty) = %v, want nil", got)
	}

	short := ChunkAnswer("hello", 10)
	if len(short) != 1 || short[0] != "hello" {
		t.Errorf("got %v", short)
	}

	long := strings.Repeat("x", 25)
	chunks := ChunkAnswer(long, 10)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if len(chunks[0]) != 10 || len(chunks[1]) != 10 || len(chunks[2]) != 5 {
		t.Errorf("chunk sizes = %d/%d/%d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
	if strings.Join(chunks, "") != long {
		t.Error("chunks do not reassemble the answer")
	}
}
