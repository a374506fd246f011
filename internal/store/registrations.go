package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Registration maps one chat user to the spreadsheet and sheet tab all
// commands operate against. Created on first successful setup, updated in
// place on re-setup, never automatically deleted.
type Registration struct {
	UserID        string
	SpreadsheetID string
	SheetName     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UpsertRegistration creates a registration or updates an existing one in
// place.
func UpsertRegistration(ctx context.Context, db *sql.DB, userID, spreadsheetID, sheetName string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO registrations (user_id, spreadsheet_id, sheet_name) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		     spreadsheet_id = excluded.spreadsheet_id,
		     sheet_name     = excluded.sheet_name,
		     updated_at     = CURRENT_TIMESTAMP`,
		userID, spreadsheetID, sheetName,
	)
	if err != nil {
		return fmt.Errorf("upserting registration: %w", err)
	}
	return nil
}

// GetRegistration returns a user's registration, or nil if the user has
// never completed setup.
func GetRegistration(ctx context.Context, db *sql.DB, userID string) (*Registration, error) {
	r := &Registration{}
	err := db.QueryRowContext(ctx,
		`SELECT user_id, spreadsheet_id, sheet_name, created_at, updated_at
		 FROM registrations WHERE user_id = ?`, userID,
	).Scan(&r.UserID, &r.SpreadsheetID, &r.SheetName, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting registration: %w", err)
	}
	return r, nil
}

// GetRegistrationBySpreadsheet returns the registration owning a
// spreadsheet. The dashboard uses it to resolve a sheet name from the
// spreadsheet id carried in a product URL.
func GetRegistrationBySpreadsheet(ctx context.Context, db *sql.DB, spreadsheetID string) (*Registration, error) {
	r := &Registration{}
	err := db.QueryRowContext(ctx,
		`SELECT user_id, spreadsheet_id, sheet_name, created_at, updated_at
		 FROM registrations WHERE spreadsheet_id = ?`, spreadsheetID,
	).Scan(&r.UserID, &r.SpreadsheetID, &r.SheetName, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting registration by spreadsheet: %w", err)
	}
	return r, nil
}

// DeleteRegistration removes a user's registration.
func DeleteRegistration(ctx context.Context, db *sql.DB, userID string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM registrations WHERE user_id = ?`, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting registration: %w", err)
	}
	return nil
}
