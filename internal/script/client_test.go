package script

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInsertRow(t *testing.T) {
	var got insertRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]int{"newRow": 12})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	row, err := client.InsertRow(context.Background(), "sheet-id", "Inventory", InsertInventoryRowOp)
	if err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if row != 12 {
		t.Errorf("row = %d, want 12", row)
	}
	if got.SpreadsheetID != "sheet-id" || got.SheetName != "Inventory" || got.FunctionName != InsertInventoryRowOp {
		t.Errorf("request = %+v", got)
	}
}

func TestInsertRowServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script exception", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.InsertRow(context.Background(), "sheet-id", "Sales", InsertSaleRowOp); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestInsertRowMissingRowNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.InsertRow(context.Background(), "sheet-id", "Inventory", InsertInventoryRowOp); err == nil {
		t.Fatal("expected error when newRow is absent")
	}
}
