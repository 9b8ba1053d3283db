package dto

import "time"

type StationVariationResponse struct {
	StationID      int      `json:"station_id"`
	Name           string   `json:"name"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AltitudeKm     float64  `json:"altitude_km"`
	BearingDefined bool     `json:"bearing_defined"`
	Variation      *float64 `json:"variation"`
	AnnualChange   *float64 `json:"annual_change"`
}

type ListStationsResponse struct {
	Model    ModelResponse              `json:"model"`
	Stations []StationVariationResponse `json:"stations"`
}

type QueryRecordResponse struct {
	RequestID      string    `json:"request_id"`
	Operation      string    `json:"operation"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AltitudeKm     float64   `json:"altitude_km"`
	DecimalYear    float64   `json:"decimal_year"`
	Declination    *float64  `json:"declination"`
	BearingDefined bool      `json:"bearing_defined"`
	CreatedAt      time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Queries []QueryRecordResponse `json:"queries"`
}
