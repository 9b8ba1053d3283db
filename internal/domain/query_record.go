package domain

import "time"

// One evaluated query, as written to the query log.
type QueryRecord struct {
	RequestID      string
	Operation      string
	Coords         GeoCoordinates
	DecimalYear    float64
	Declination    float64
	BearingDefined bool
	CreatedAt      time.Time
}
