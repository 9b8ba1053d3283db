package services

import (
	"context"
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"magvar-service/internal/geomag"
	"magvar-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// StationVariations evaluates the variation at every station with at most
// workers evaluations in flight. The result keeps repository order. Stations
// where declination is indeterminate are reported with BearingDefined=false.
func StationVariations(
	ctx context.Context,
	repo ports.StationRepository,
	model *geomag.Model,
	decimalYear float64,
	workers int,
) ([]domain.StationVariation, error) {
	stations, err := repo.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("station variations: list stations: %w", err)
	}

	if workers < 1 {
		workers = 1
	}

	out := make([]domain.StationVariation, len(stations))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, st := range stations {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := model.ComputeFieldAt(st.Coords, decimalYear)
			if err != nil {
				return fmt.Errorf("station variations: station_id=%d: %w", st.StationID, err)
			}

			v := domain.Variation{ModelInfo: f.ModelInfo}
			if f.BearingDefined {
				v.Declination = f.Declination
				v.AnnualChange = f.DeclinationRate
			}
			out[i] = domain.StationVariation{Station: st, Variation: v, BearingDefined: f.BearingDefined}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("station variations: %w", err)
		}
		return nil, err
	}

	return out, nil
}
