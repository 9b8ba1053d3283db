package querylog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"magvar-service/internal/platform/obs"
)

// SQLQueryLog is a Postgres-backed query log (pgx stdlib driver).
type SQLQueryLog struct {
	DB *sql.DB
}

func NewSQLQueryLog(db *sql.DB) *SQLQueryLog {
	return &SQLQueryLog{DB: db}
}

// Append a query record.
func (s *SQLQueryLog) Record(ctx context.Context, rec domain.QueryRecord) error {
	if s.DB == nil {
		return errors.New("query log: db is nil")
	}

	if rec.Operation == "" {
		return errors.New("record query: operation must not be empty")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO query_log (
		request_id, operation, lat, lon, alt_km,
		decimal_year, declination, bearing_defined, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		rec.RequestID, rec.Operation, rec.Coords.Lat, rec.Coords.Lon, rec.Coords.AltKm,
		rec.DecimalYear, rec.Declination, rec.BearingDefined, rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record query: insert query_log: %w", err)
	}

	return nil
}

// Fetch the most recent records, newest first.
func (s *SQLQueryLog) Recent(ctx context.Context, limit int) (_ []domain.QueryRecord, err error) {
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
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent queries: query query_log table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.QueryRecord, 0, limit)
	for rows.Next() {
		var rec domain.QueryRecord
		if err := rows.Scan(
			&rec.RequestID, &rec.Operation, &rec.Coords.Lat, &rec.Coords.Lon, &rec.Coords.AltKm,
			&rec.DecimalYear, &rec.Declination, &rec.BearingDefined, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("recent queries: scan rows: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent queries: row iteration: %w", err)
	}

	return out, nil
}
