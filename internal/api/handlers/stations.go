package handlers

import (
	"magvar-service/internal/api/dto"
	"magvar-service/internal/geomag"
	"magvar-service/internal/ports"
	"magvar-service/internal/services"
	"net/http"
	"time"
)

// StationHandler surveys variation across the stored reference stations.
type StationHandler struct {
	Repo    ports.StationRepository
	Model   *geomag.Model
	Workers int
	Now     func() time.Time
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	now := h.Now
	if now == nil {
		now = time.Now
	}
	year, err := parseDate(r.URL.Query().Get("date"), now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := services.StationVariations(r.Context(), h.Repo, h.Model, year, h.Workers)
	if err != nil {
		logFailure(r, "station variations", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Model:    modelResponse(h.Model.Info(year)),
		Stations: make([]dto.StationVariationResponse, 0, len(results)),
	}
	for _, sv := range results {
		item := dto.StationVariationResponse{
			StationID:      sv.Station.StationID,
			Name:           sv.Station.Name,
			Latitude:       sv.Station.Coords.Lat,
			Longitude:      sv.Station.Coords.Lon,
			AltitudeKm:     sv.Station.Coords.AltKm,
			BearingDefined: sv.BearingDefined,
		}
		if sv.BearingDefined {
			item.Variation = floatPtr(sv.Variation.Declination)
			item.AnnualChange = floatPtr(sv.Variation.AnnualChange)
		}
		res.Stations = append(res.Stations, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
