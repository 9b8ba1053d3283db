package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"magvar-service/internal/api/dto"
	"magvar-service/internal/domain"
	"magvar-service/internal/services"
	"net/http"
	"time"
)

// FieldHandler exposes the field model: full vector, variation, heading
// conversion, query history and model provenance.
type FieldHandler struct {
	Service      *services.FieldService
	HistoryLimit int
	Now          func() time.Time
}

func (h *FieldHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Field returns the full field vector for lat/lon/alt/date query parameters.
func (h *FieldHandler) Field(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	lat, lon, err := parsePosition(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	alt, err := parseOptionalFloat(q, "alt", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	year, err := parseDate(q.Get("date"), h.now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	coords := domain.GeoCoordinates{Lat: lat, Lon: lon, AltKm: alt}
	f, err := h.Service.Field(r.Context(), coords, year)
	if err != nil {
		writeServiceError(w, r, "field", err)
		return
	}

	res := dto.FieldResponse{
		Model:           modelResponse(f.ModelInfo),
		Latitude:        lat,
		Longitude:       lon,
		AltitudeKm:      alt,
		BearingDefined:  f.BearingDefined,
		Inclination:     f.Inclination,
		InclinationRate: f.InclinationRate,
		Total:           f.Total,
		TotalRate:       f.TotalRate,
		Horizontal:      f.Horizontal,
		HorizontalRate:  f.HorizontalRate,
		North:           f.North,
		East:            f.East,
		Down:            f.Down,
		NorthRate:       f.NorthRate,
		EastRate:        f.EastRate,
		DownRate:        f.DownRate,
	}
	if f.BearingDefined {
		res.Declination = floatPtr(f.Declination)
		res.DeclinationRate = floatPtr(f.DeclinationRate)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Variation returns declination and its annual change at sea level.
func (h *FieldHandler) Variation(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	lat, lon, err := parsePosition(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	year, err := parseDate(q.Get("date"), h.now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.Service.Variation(r.Context(), lat, lon, year)
	if err != nil {
		writeServiceError(w, r, "variation", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.VariationResponse{
		Model:         modelResponse(v.ModelInfo),
		Latitude:      lat,
		Longitude:     lon,
		Position:      domain.FormatCoordinate(lat, lon),
		Variation:     v.Declination,
		VariationText: services.FormatVariation(v.Declination),
		AnnualChange:  v.AnnualChange,
	})
}

// Heading converts between true and compass headings at a position.
func (h *FieldHandler) Heading(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.HeadingRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	lat, lon, err := bodyPosition(req.Lat, req.Lon, req.LatDM, req.LonDM)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Heading == nil {
		writeError(w, r, http.StatusBadRequest, "heading is required")
		return
	}
	year, err := parseDate(req.Date, h.now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Service.ConvertHeading(r.Context(), services.HeadingRequest{
		Lat:         lat,
		Lon:         lon,
		DecimalYear: year,
		Heading:     *req.Heading,
		Direction:   services.HeadingDirection(req.Direction),
	})
	if err != nil {
		writeServiceError(w, r, "heading", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HeadingResponse{
		Model:         modelResponse(res.Variation.ModelInfo),
		Position:      domain.FormatCoordinate(lat, lon),
		Direction:     string(res.Direction),
		Input:         res.Input,
		Output:        res.Output,
		Variation:     res.Variation.Declination,
		VariationText: services.FormatVariation(res.Variation.Declination),
	})
}

// CompassError reports how far a compass reading is off the magnetic heading
// for a known true heading at a position.
func (h *FieldHandler) CompassError(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CompassErrorRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	lat, lon, err := bodyPosition(req.Lat, req.Lon, req.LatDM, req.LonDM)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.TrueHeading == nil || req.CompassReading == nil {
		writeError(w, r, http.StatusBadRequest, "true_heading and compass_reading are required")
		return
	}
	year, err := parseDate(req.Date, h.now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Service.CompassError(r.Context(), services.CompassErrorRequest{
		Lat:            lat,
		Lon:            lon,
		DecimalYear:    year,
		TrueHeading:    *req.TrueHeading,
		CompassReading: *req.CompassReading,
	})
	if err != nil {
		writeServiceError(w, r, "compass error", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CompassErrorResponse{
		Model:           modelResponse(res.Variation.ModelInfo),
		Position:        domain.FormatCoordinate(lat, lon),
		Variation:       res.Variation.Declination,
		VariationText:   services.FormatVariation(res.Variation.Declination),
		TrueHeading:     res.TrueHeading,
		MagneticHeading: res.MagneticHeading,
		CompassReading:  res.CompassReading,
		CompassError:    res.Error,
	})
}

// History lists the most recent logged queries.
func (h *FieldHandler) History(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := h.HistoryLimit
	if limit <= 0 {
		limit = 50
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := parseFloat(r.URL.Query(), "limit")
		if err != nil || v < 1 || v > 1000 || v != float64(int(v)) {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 1000")
			return
		}
		limit = int(v)
	}

	recs, err := h.Service.History(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "history", err)
		return
	}

	res := dto.HistoryResponse{Queries: make([]dto.QueryRecordResponse, 0, len(recs))}
	for _, rec := range recs {
		item := dto.QueryRecordResponse{
			RequestID:      rec.RequestID,
			Operation:      rec.Operation,
			Latitude:       rec.Coords.Lat,
			Longitude:      rec.Coords.Lon,
			AltitudeKm:     rec.Coords.AltKm,
			DecimalYear:    rec.DecimalYear,
			BearingDefined: rec.BearingDefined,
			CreatedAt:      rec.CreatedAt,
		}
		if rec.BearingDefined {
			item.Declination = floatPtr(rec.Declination)
		}
		res.Queries = append(res.Queries, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Model describes the compiled-in coefficient set.
func (h *FieldHandler) Model(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	m := h.Service.Model
	if m == nil {
		writeServiceError(w, r, "model", errors.New("no model configured"))
		return
	}
	c := m.Constants()

	writeJSON(w, r, http.StatusOK, dto.ModelInfoResponse{
		Name:             c.Name,
		Label:            m.Label(),
		Epoch:            c.Epoch,
		ReleaseDate:      c.ReleaseDate,
		ValidityYears:    c.ValidityYears,
		MaxDegree:        m.MaxDegree(),
		CoefficientCount: len(m.Coefficients()),
	})
}
