package store

import (
	"context"
	"testing"

	"resale_ledger/internal/db"
)

func TestUpsertAndGetRegistration(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := UpsertRegistration(ctx, database, "user-1", "sheet-a", "Inventory"); err != nil {
		t.Fatalf("UpsertRegistration: %v", err)
	}

	reg, err := GetRegistration(ctx, database, "user-1")
	if err != nil {
		t.Fatalf("GetRegistration: %v", err)
	}
	if reg == nil {
		t.Fatal("registration not found after upsert")
	}
	if reg.SpreadsheetID != "sheet-a" || reg.SheetName != "Inventory" {
		t.Errorf("got %+v", reg)
	}
	if reg.CreatedAt.IsZero() || reg.UpdatedAt.IsZero() {
		t.Errorf("timestamps not set: %+v", reg)
	}
}

func TestUpsertRegistrationReplacesInPlace(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := UpsertRegistration(ctx, database, "user-1", "sheet-a", "Inventory"); err != nil {
		t.Fatalf("UpsertRegistration: %v", err)
	}
	if err := UpsertRegistration(ctx, database, "user-1", "sheet-b", "Cards"); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	reg, err := GetRegistration(ctx, database, "user-1")
	if err != nil {
		t.Fatalf("GetRegistration: %v", err)
	}
	if reg.SpreadsheetID != "sheet-b" || reg.SheetName != "Cards" {
		t.Errorf("registration not replaced: %+v", reg)
	}
}

func TestGetRegistrationMissingUser(t *testing.T) {
	database := db.NewTestDB(t)

	reg, err := GetRegistration(context.Background(), database, "nobody")
	if err != nil {
		t.Fatalf("GetRegistration: %v", err)
	}
	if reg != nil {
		t.Errorf("got %+v, want nil for unknown user", reg)
	}
}

func TestGetRegistrationBySpreadsheet(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := UpsertRegistration(ctx, database, "user-1", "sheet-a", "Inventory"); err != nil {
		t.Fatalf("UpsertRegistration: %v", err)
	}

	reg, err := GetRegistrationBySpreadsheet(ctx, database, "sheet-a")
	if err != nil {
		t.Fatalf("GetRegistrationBySpreadsheet: %v", err)
	}
	if reg == nil || reg.UserID != "user-1" {
		t.Errorf("got %+v, want user-1", reg)
	}

	missing, err := GetRegistrationBySpreadsheet(ctx, database, "sheet-z")
	if err != nil {
		t.Fatalf("GetRegistrationBySpreadsheet: %v", err)
	}
	if missing != nil {
		t.Errorf("got %+v, want nil for unknown spreadsheet", missing)
	}
}

func TestDeleteRegistration(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := UpsertRegistration(ctx, database, "user-1", "sheet-a", "Inventory"); err != nil {
		t.Fatalf("UpsertRegistration: %v", err)
	}
	if err := DeleteRegistration(ctx, database, "user-1"); err != nil {
		t.Fatalf("DeleteRegistration: %v", err)
	}

	reg, err := GetRegistration(ctx, database, "user-1")
	if err != nil {
		t.Fatalf("GetRegistration: %v", err)
	}
	if reg != nil {
		t.Errorf("registration survived delete: %+v", reg)
	}
}
