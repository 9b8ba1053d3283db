package handlers

import (
	"errors"
	"fmt"
	"magvar-service/internal/api/dto"
	"magvar-service/internal/domain"
	"magvar-service/internal/geomag"
	"magvar-service/internal/services"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// Decimal years outside this range are almost certainly typos.
const (
	minDecimalYear = 1900
	maxDecimalYear = 2200
)

// parseDate accepts RFC 3339, YYYY-MM-DD or a decimal year ("2025.5").
// An empty value means today.
func parseDate(raw string, now func() time.Time) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return geomag.DecimalYear(now()), nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return geomag.DecimalYear(t), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return geomag.DecimalYear(t), nil
	}

	y, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(y) || y < minDecimalYear || y > maxDecimalYear {
		return 0, errInvalidDate
	}
	return y, nil
}

// parseFloat reads a required numeric query parameter.
func parseFloat(q url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return v, nil
}

// parseAxis reads key as decimal degrees, or key_dm as degrees and decimal
// minutes ("51 30.5 N") converted by decimal.
func parseAxis(q url.Values, key string, decimal func(domain.DM) (float64, error)) (float64, error) {
	rawDM := strings.TrimSpace(q.Get(key + "_dm"))
	if rawDM == "" {
		return parseFloat(q, key)
	}
	if strings.TrimSpace(q.Get(key)) != "" {
		return 0, fmt.Errorf("give %s or %s_dm, not both", key, key)
	}

	dm, err := domain.ParseDM(rawDM)
	if err != nil {
		return 0, fmt.Errorf("%s_dm: %w", key, err)
	}
	v, err := decimal(dm)
	if err != nil {
		return 0, fmt.Errorf("%s_dm: %w", key, err)
	}
	return v, nil
}

// parsePosition reads lat/lon (or lat_dm/lon_dm) query parameters.
func parsePosition(q url.Values) (lat, lon float64, err error) {
	if lat, err = parseAxis(q, "lat", domain.DM.Latitude); err != nil {
		return 0, 0, err
	}
	if lon, err = parseAxis(q, "lon", domain.DM.Longitude); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// bodyAxis resolves a JSON position component given either as decimal
// degrees or as a DM object.
func bodyAxis(v *float64, dm *dto.DMRequest, key string, decimal func(domain.DM) (float64, error)) (float64, error) {
	switch {
	case v != nil && dm != nil:
		return 0, fmt.Errorf("give %s or %s_dm, not both", key, key)
	case dm != nil:
		out, err := decimal(domain.DM{Degrees: dm.Degrees, Minutes: dm.Minutes, Hemisphere: domain.Hemisphere(dm.Hemisphere)})
		if err != nil {
			return 0, fmt.Errorf("%s_dm: %w", key, err)
		}
		return out, nil
	case v != nil:
		return *v, nil
	default:
		return 0, fmt.Errorf("%s is required", key)
	}
}

// bodyPosition resolves lat/lon from a JSON body.
func bodyPosition(lat, lon *float64, latDM, lonDM *dto.DMRequest) (float64, float64, error) {
	la, err := bodyAxis(lat, latDM, "lat", domain.DM.Latitude)
	if err != nil {
		return 0, 0, err
	}
	lo, err := bodyAxis(lon, lonDM, "lon", domain.DM.Longitude)
	if err != nil {
		return 0, 0, err
	}
	return la, lo, nil
}

// parseOptionalFloat reads a numeric query parameter, or fallback when absent.
func parseOptionalFloat(q url.Values, key string, fallback float64) (float64, error) {
	if strings.TrimSpace(q.Get(key)) == "" {
		return fallback, nil
	}
	return parseFloat(q, key)
}

func modelResponse(info domain.ModelInfo) dto.ModelResponse {
	return dto.ModelResponse{
		Name:            info.Model,
		Epoch:           info.Epoch,
		DecimalYear:     info.DecimalYear,
		YearsFromEpoch:  info.YearsFromEpoch,
		OutsideValidity: info.OutsideValidity,
	}
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case services.IsInvalidInput(err),
		errors.Is(err, services.ErrInvalidHeading),
		errors.Is(err, services.ErrInvalidDirection):
		writeError(w, r, http.StatusBadRequest, rootMessage(err))
	case errors.Is(err, geomag.ErrNoBearing):
		writeError(w, r, http.StatusUnprocessableEntity, geomag.ErrNoBearing.Error())
	default:
		logFailure(r, op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// rootMessage strips the "op: step:" wrapping and returns the innermost message.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func floatPtr(v float64) *float64 { return &v }
