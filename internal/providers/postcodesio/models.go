package postcodesio

// LookupAPIResponse is the envelope returned by GET /postcodes/{postcode}.
// Status mirrors the HTTP status; Result is null when the postcode is unknown.
type LookupAPIResponse struct {
	Status int           `json:"status"`
	Error  string        `json:"error,omitempty"`
	Result *LookupResult `json:"result"`
}

type LookupResult struct {
	Postcode      string  `json:"postcode"`
	Quality       int     `json:"quality"`
	Eastings      int     `json:"eastings"`
	Northings     int     `json:"northings"`
	Country       string  `json:"country"`
	Region        string  `json:"region"`
	AdminDistrict string  `json:"admin_district"`
	AdminCounty   string  `json:"admin_county"`
	AdminWard     string  `json:"admin_ward"`
	Parish        string  `json:"parish"`
	Outcode       string  `json:"outcode"`
	Incode        string  `json:"incode"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
}
