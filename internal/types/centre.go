package types

// Centre is a practical driving test centre from the DVSA catalog
type Centre struct {
	Name      string  `json:"name" example:"Mill Hill (London)"`
	Address   string  `json:"address" example:"Unit 3, Bunns Lane Works, Mill Hill"`
	Postcode  string  `json:"postcode" example:"NW7 2AJ"`
	Latitude  float64 `json:"latitude" example:"51.6134"`
	Longitude float64 `json:"longitude" example:"-0.2387"`
}

// Coords returns the centre's position
func (c Centre) Coords() Coords {
	return NewCoords(c.Latitude, c.Longitude)
}

// CentreWithDistance is a Centre annotated with its distance in miles from a search origin
type CentreWithDistance struct {
	Centre
	Distance float64 `json:"distance" example:"4.73"`
}
