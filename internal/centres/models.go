package centres

import "github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/types"

// SearchInput is a single nearby-centre query
type SearchInput struct {
	Postcode string
	Radius   int // miles
}

// SearchResult is the response to a search. Centres is sorted by ascending
// distance and capped; Total counts every centre inside the radius.
type SearchResult struct {
	UserPostcode string                     `json:"userPostcode" example:"SW1A 1AA"`
	UserLocation types.Coords               `json:"userLocation"`
	Radius       int                        `json:"radius" example:"50"`
	Centres      []types.CentreWithDistance `json:"centres"`
	Total        int                        `json:"total" example:"37"`
}
