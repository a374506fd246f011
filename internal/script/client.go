package script

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Operation names deployed in the Apps Script project. Each inserts a new
// row above the running-total row of its sheet and reports the new row
// number.
const (
	InsertInventoryRowOp = "addRowAboveTotalSelective"
	InsertSaleRowOp      = "addRowAboveTotalSelective_Sales"
)

// Client calls the Apps Script web app that owns row insertion. Row
// placement logic (keeping the totals row last) lives in the script, not
// here.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type insertRequest struct {
	SpreadsheetID string `json:"spreadsheetId"`
	SheetName     string `json:"sheetName"`
	FunctionName  string `json:"functionName"`
}

type insertResponse struct {
	NewRow int `json:"newRow"`
}

// InsertRow invokes the named operation and returns the new row's 1-based
// position. A response without a row number is a failure; no cell write
// must be attempted in that case.
func (c *Client) InsertRow(ctx context.Context, spreadsheetID, sheetName, functionName string) (int, error) {
	log.Debug().
		Str("sheet", sheetName).
		Str("function", functionName).
		Msg("Requesting new row from Apps Script")

	payload, err := json.Marshal(insertRequest{
		SpreadsheetID: spreadsheetID,
		SheetName:     sheetName,
		FunctionName:  functionName,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode insert request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create insert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call Apps Script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, fmt.Errorf("Apps Script error (HTTP %d): %s", resp.StatusCode, string(body))
	}

	var result insertResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode Apps Script response: %w", err)
	}

	if result.NewRow <= 0 {
		return 0, fmt.Errorf("Apps Script did not return a new row number")
	}

	log.Debug().
		Int("row", result.NewRow).
		Str("sheet", sheetName).
		Msg("Apps Script created new row")

	return result.NewRow, nil
}
