package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"magvar-service/internal/platform/db"
)

// Initialize the database schema for the given dialect.
func InitSchema(conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	realType := "REAL"
	boolType := "INTEGER"
	timeType := "TEXT"
	if dialect == db.Postgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
		realType = "DOUBLE PRECISION"
		boolType = "BOOLEAN"
		timeType = "TIMESTAMPTZ"
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS stations (
		station_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat %[1]s NOT NULL,
		lon %[1]s NOT NULL,
		alt_km %[1]s NOT NULL DEFAULT 0
	);
	`, realType)

	createQueryLogQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS query_log (
		%[1]s,
		request_id TEXT NOT NULL DEFAULT '',
		operation TEXT NOT NULL,
		lat %[2]s NOT NULL,
		lon %[2]s NOT NULL,
		alt_km %[2]s NOT NULL,
		decimal_year %[2]s NOT NULL,
		declination %[2]s NOT NULL,
		bearing_defined %[3]s NOT NULL,
		created_at %[4]s NOT NULL
	);
	`, idColumn, realType, boolType, timeType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_query_log_created_at
	ON query_log(created_at);
	`

	statements := []string{
		createStationsQuery,
		createQueryLogQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
