package domain

// Named reference location used for variation surveys.
type Station struct {
	StationID int
	Name      string
	Coords    GeoCoordinates
}

// Variation evaluated for a single station.
type StationVariation struct {
	Station   Station
	Variation Variation
	// False when the station sits where declination is indeterminate.
	BearingDefined bool
}
