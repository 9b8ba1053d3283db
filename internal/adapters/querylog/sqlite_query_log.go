package querylog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"magvar-service/internal/platform/obs"
	"time"
)

// SQLite-backed query log. Timestamps are stored as RFC 3339 text so they
// sort lexically.
type SqliteQueryLog struct {
	DB *sql.DB
}

func NewSqliteQueryLog(db *sql.DB) *SqliteQueryLog {
	return &SqliteQueryLog{DB: db}
}

// Append a query record.
func (s *SqliteQueryLog) Record(ctx context.Context, rec domain.QueryRecord) error {
	if s.DB == nil {
		return errors.New("query log: db is nil")
	}

	if rec.Operation == "" {
		return errors.New("record query: operation must not be empty")
	}

	bearing := 0
	if rec.BearingDefined {
		bearing = 1
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO query_log (
		request_id, operation, lat, lon, alt_km,
		decimal_year, declination, bearing_defined, created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		rec.RequestID, rec.Operation, rec.Coords.Lat, rec.Coords.Lon, rec.Coords.AltKm,
		rec.DecimalYear, rec.Declination, bearing, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record query: insert query_log: %w", err)
	}

	return nil
}

// Fetch the most recent records, newest first.
func (s *SqliteQueryLog) Recent(ctx context.Context, limit int) (_ []domain.QueryRecord, err error) {
	defer obs.Time(ctx, "querylog.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("query log: db is nil")
	}

	if limit <= 0 {
		return []domain.QueryRecord{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT request_id, operation, lat, lon, alt_km,
		decimal_year, declination, bearing_defined, created_at
	FROM query_log
	ORDER BY id DESC
	LIMIT ?;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent queries: query query_log table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.QueryRecord, 0, limit)
	for rows.Next() {
		var rec domain.QueryRecord
		var bearing int
		var createdAt string
		if err := rows.Scan(
			&rec.RequestID, &rec.Operation, &rec.Coords.Lat, &rec.Coords.Lon, &rec.Coords.AltKm,
			&rec.DecimalYear, &rec.Declination, &bearing, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("recent queries: scan rows: %w", err)
		}

		rec.BearingDefined = bearing != 0
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("recent queries: parse created_at %q: %w", createdAt, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent queries: row iteration: %w", err)
	}

	return out, nil
}
