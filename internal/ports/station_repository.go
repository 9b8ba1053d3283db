package ports

import (
	"context"
	"magvar-service/internal/domain"
)

// Port: a boundary for retrieving reference stations from a data source.
type StationRepository interface {
	// Retrieve all stations, ordered by station ID.
	ListStations(ctx context.Context) ([]domain.Station, error)
}
