package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resale_ledger/internal/db"
	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
	"resale_ledger/internal/sheets"
	"resale_ledger/internal/store"
)

type fakeSheet struct {
	ranges map[string][][]interface{}
}

func (f *fakeSheet) ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	return f.ranges[range_], nil
}

func (f *fakeSheet) BatchUpdateValues(ctx context.Context, spreadsheetID string, updates []sheets.ValueUpdate) error {
	return nil
}

func (f *fakeSheet) DeleteRowSpan(ctx context.Context, spreadsheetID, sheetName string, rowNumber int) error {
	return nil
}

func (f *fakeSheet) SetCellTextColor(ctx context.Context, spreadsheetID, sheetName, cell string, red, green, blue float64) error {
	return nil
}

func newTestServer(t *testing.T) (*Server, *fakeSheet) {
	t.Helper()

	database := db.NewTestDB(t)
	if err := store.UpsertRegistration(context.Background(), database, "user-1", "sheet-a", "Inventory"); err != nil {
		t.Fatalf("UpsertRegistration: %v", err)
	}

	fake := &fakeSheet{ranges: map[string][][]interface{}{}}
	fake.ranges["Inventory!B:B"] = make([][]interface{}, 9)
	row := make([]interface{}, records.InventoryColumnCount)
	for i := range row {
		row[i] = ""
	}
	row[0] = "abc-123"
	row[1] = "Charizard Box"
	row[2] = "01/15/2025"
	row[3] = "4"
	row[4] = "3"
	row[11] = "49.99"
	fake.ranges["Inventory!A8:T8"] = [][]interface{}{row}

	return NewServer(database, ledger.NewService(fake, nil)), fake
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Errorf("body = %q", body)
	}
}

func TestProductPage(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product/abc-123?s=sheet-a", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Charizard Box", "01/15/2025", "$49.99", "3 of 4"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestProductPageUnknownSpreadsheet(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product/abc-123?s=sheet-z", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestProductPageUnknownID(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product/nope?s=sheet-a", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
