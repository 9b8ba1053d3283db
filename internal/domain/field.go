package domain

// Provenance of a computed result: which model and how far from its epoch.
type ModelInfo struct {
	Model           string
	Epoch           float64
	DecimalYear     float64
	YearsFromEpoch  float64
	OutsideValidity bool
}

// Represents the geomagnetic field at one point and instant.
// Intensities and vector components are in nanotesla, angles in degrees and
// rates per year. When BearingDefined is false the declination and its rate
// are indeterminate and reported as zero.
type MagneticField struct {
	ModelInfo

	Declination float64
	Inclination float64
	Total       float64
	Horizontal  float64
	North       float64
	East        float64
	Down        float64

	DeclinationRate float64
	InclinationRate float64
	TotalRate       float64
	HorizontalRate  float64
	NorthRate       float64
	EastRate        float64
	DownRate        float64

	BearingDefined bool
}

// Compass variation at a point, for callers that only need declination.
type Variation struct {
	ModelInfo

	Declination  float64
	AnnualChange float64
}
