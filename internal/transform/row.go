package transform

import (
	"wrecklore/internal/normalize"
)

// Canonical column names read by the converter. Source registries with other
// headers are renamed first (see internal/remap).
const (
	colShipsName        = "shipsName"
	colAKA              = "aka"
	colVesselType       = "vesselType"
	colYearBuilt        = "yearBuilt"
	colWhereBuilt       = "whereBuilt"
	colDateLost         = "dateLost"
	colYear             = "year"
	colMonth            = "month"
	colDay              = "day"
	colLocationLost     = "locationLost"
	colLatitude         = "latitude"
	colLongitude        = "longitude"
	colCauseOfLoss      = "causeOfLoss"
	colConstruction     = "construction"
	colFlag             = "flag"
	colLength           = "length"
	colBeam             = "beam"
	colDraft            = "draft"
	colGrossTonnage     = "grossTonnage"
	colNetTonnage       = "netTonnage"
	colHomeHailingPort  = "homeHailingPort"
	colDeparturePort    = "departurePort"
	colDestinationPort  = "destinationPort"
	colMaster           = "master"
	colNumberOfCrew     = "numberOfCrew"
	colNumPass          = "numPass"
	colLivesLost        = "livesLost"
	colShipValue        = "shipValue"
	colCargoValue       = "cargoValue"
	colNatureOfCargo    = "natureOfCargo"
	colUSLSSStationName = "uslssStationName"
	colLost             = "lost"
	colMiscInformation  = "miscInformation"
)

// Row is one source record keyed by canonical column name. Values are raw;
// lookups go through the normalizer.
type Row map[string]string

// Clean returns the normalized value of a column and whether it is present.
func (r Row) Clean(column string) (string, bool) {
	return normalize.Clean(r[column])
}

// Value returns the normalized value or the empty string when absent.
func (r Row) Value(column string) string {
	v, _ := r.Clean(column)
	return v
}

// Has reports whether a column carries data after normalization.
func (r Row) Has(column string) bool {
	_, ok := r.Clean(column)
	return ok
}
