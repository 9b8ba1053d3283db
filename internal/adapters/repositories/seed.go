package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"magvar-service/internal/platform/db"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type StationSeed struct {
	StationID int     `json:"station_id" yaml:"station_id"`
	Name      string  `json:"name" yaml:"name"`
	Lat       float64 `json:"lat" yaml:"lat"`
	Lon       float64 `json:"lon" yaml:"lon"`
	AltKm     float64 `json:"alt_km" yaml:"alt_km"`
}

// Parse station seeds from JSON or YAML, chosen by file extension.
func ParseStationSeeds(path string, data []byte) ([]StationSeed, error) {
	var seeds []StationSeed

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seeds); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &seeds); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q", filepath.Ext(path))
	}

	rows := make([]StationSeed, 0, len(seeds))
	for i, item := range seeds {
		if item.StationID <= 0 {
			return nil, fmt.Errorf("invalid station_id at index %d: %d", i+1, item.StationID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("station at index %d: name cannot be empty", i+1)
		}

		coords := domain.GeoCoordinates{Lat: item.Lat, Lon: item.Lon, AltKm: item.AltKm}
		if err := coords.Validate(); err != nil {
			return nil, fmt.Errorf("station %q: %w", name, err)
		}

		item.Name = name
		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the stations table from a JSON or YAML file.
func SeedStations(conn *sql.DB, dialect db.Dialect, path string) error {
	if conn == nil {
		return errors.New("seed stations: DB is nil")
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed stations: read %q: %w", path, err)
	}

	rows, err := ParseStationSeeds(path, bytes)
	if err != nil {
		return fmt.Errorf("seed stations: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("seed stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO stations (station_id, name, lat, lon, alt_km)
	VALUES (%s, %s, %s, %s, %s)
	ON CONFLICT (station_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		alt_km = EXCLUDED.alt_km;
	`,
		dialect.Placeholder(1), dialect.Placeholder(2), dialect.Placeholder(3),
		dialect.Placeholder(4), dialect.Placeholder(5),
	)
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.StationID, s.Name, s.Lat, s.Lon, s.AltKm); err != nil {
			return fmt.Errorf("seed stations: insert station_id=%d: %w", s.StationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stations: commit tx: %w", err)
	}

	return nil
}
