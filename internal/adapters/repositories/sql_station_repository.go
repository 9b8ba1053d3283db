package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"magvar-service/internal/platform/obs"
)

// SQL-backed implementation of the StationRepository port. The query is
// portable across SQLite and Postgres.
type SQLStationRepository struct{ DB *sql.DB }

func NewSQLStationRepository(db *sql.DB) *SQLStationRepository {
	return &SQLStationRepository{DB: db}
}

// Return all stations stored in the database.
func (s *SQLStationRepository) ListStations(ctx context.Context) (_ []domain.Station, err error) {
	defer obs.Time(ctx, "stations.ListStations")(&err)

	if s.DB == nil {
		return nil, errors.New("station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		name,
		lat,
		lon,
		alt_km
	FROM stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0, 32)
	for rows.Next() {
		var st domain.Station
		err := rows.Scan(&st.StationID, &st.Name, &st.Coords.Lat, &st.Coords.Lon, &st.Coords.AltKm)
		if err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}
