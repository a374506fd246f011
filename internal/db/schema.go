package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The bot itself owns no record data;
// the only table maps a chat user to the spreadsheet everything else
// operates against.
const schema = `
CREATE TABLE IF NOT EXISTS registrations (
    user_id        TEXT PRIMARY KEY,
    spreadsheet_id TEXT NOT NULL,
    sheet_name     TEXT NOT NULL,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_registrations_spreadsheet
    ON registrations(spreadsheet_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
