package geo

import (
	"math"

	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/types"
)

// EarthRadiusMiles is the mean Earth radius used for all distance calculations
const EarthRadiusMiles = 3959.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance returns the great-circle distance in miles between two points
// given in decimal degrees, using the haversine formula.
// Inputs are not range checked.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// DistanceBetween is Distance for two Coords
func DistanceBetween(from, to types.Coords) float64 {
	return Distance(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}
