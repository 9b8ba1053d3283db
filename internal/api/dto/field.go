package dto

type ModelResponse struct {
	Name            string  `json:"name"`
	Epoch           float64 `json:"epoch"`
	DecimalYear     float64 `json:"decimal_year"`
	YearsFromEpoch  float64 `json:"years_from_epoch"`
	OutsideValidity bool    `json:"outside_validity"`
}

// Declination fields are null when the bearing is indeterminate.
type FieldResponse struct {
	Model      ModelResponse `json:"model"`
	Latitude   float64       `json:"latitude"`
	Longitude  float64       `json:"longitude"`
	AltitudeKm float64       `json:"altitude_km"`

	BearingDefined  bool     `json:"bearing_defined"`
	Declination     *float64 `json:"declination"`
	DeclinationRate *float64 `json:"declination_rate"`

	Inclination     float64 `json:"inclination"`
	InclinationRate float64 `json:"inclination_rate"`
	Total           float64 `json:"total_intensity"`
	TotalRate       float64 `json:"total_intensity_rate"`
	Horizontal      float64 `json:"horizontal_intensity"`
	HorizontalRate  float64 `json:"horizontal_intensity_rate"`
	North           float64 `json:"north"`
	East            float64 `json:"east"`
	Down            float64 `json:"down"`
	NorthRate       float64 `json:"north_rate"`
	EastRate        float64 `json:"east_rate"`
	DownRate        float64 `json:"down_rate"`
}

type VariationResponse struct {
	Model         ModelResponse `json:"model"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Position      string        `json:"position"`
	Variation     float64       `json:"variation"`
	VariationText string        `json:"variation_text"`
	AnnualChange  float64       `json:"annual_change"`
}

type ModelInfoResponse struct {
	Name             string  `json:"name"`
	Label            string  `json:"label"`
	Epoch            float64 `json:"epoch"`
	ReleaseDate      string  `json:"release_date"`
	ValidityYears    float64 `json:"validity_years"`
	MaxDegree        int     `json:"max_degree"`
	CoefficientCount int     `json:"coefficient_count"`
}
