package types

// Coords is a latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude" example:"51.501009"`
	Longitude float64 `json:"longitude" example:"-0.141588"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
