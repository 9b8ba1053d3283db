package dto

// DMRequest is a position component in degrees and decimal minutes,
// e.g. {"deg": 51, "min": 30.5, "hem": "N"}.
type DMRequest struct {
	Degrees    float64 `json:"deg"`
	Minutes    float64 `json:"min"`
	Hemisphere string  `json:"hem"`
}

// Either lat or lat_dm (and lon or lon_dm) must be given.
type HeadingRequest struct {
	Lat       *float64   `json:"lat"`
	Lon       *float64   `json:"lon"`
	LatDM     *DMRequest `json:"lat_dm"`
	LonDM     *DMRequest `json:"lon_dm"`
	Date      string     `json:"date"`
	Heading   *float64   `json:"heading"`
	Direction string     `json:"direction"`
}

type HeadingResponse struct {
	Model         ModelResponse `json:"model"`
	Position      string        `json:"position"`
	Direction     string        `json:"direction"`
	Input         float64       `json:"input"`
	Output        float64       `json:"output"`
	Variation     float64       `json:"variation"`
	VariationText string        `json:"variation_text"`
}

type CompassErrorRequest struct {
	Lat            *float64   `json:"lat"`
	Lon            *float64   `json:"lon"`
	LatDM          *DMRequest `json:"lat_dm"`
	LonDM          *DMRequest `json:"lon_dm"`
	Date           string     `json:"date"`
	TrueHeading    *float64   `json:"true_heading"`
	CompassReading *float64   `json:"compass_reading"`
}

type CompassErrorResponse struct {
	Model           ModelResponse `json:"model"`
	Position        string        `json:"position"`
	Variation       float64       `json:"variation"`
	VariationText   string        `json:"variation_text"`
	TrueHeading     float64       `json:"true_heading"`
	MagneticHeading float64       `json:"magnetic_heading"`
	CompassReading  float64       `json:"compass_reading"`
	CompassError    float64       `json:"compass_error"`
}
