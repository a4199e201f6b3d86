package centres

import "errors"

var (
	// ErrPostcodeRequired is returned when a search has no postcode
	ErrPostcodeRequired = errors.New("postcode is required")

	// ErrInvalidPostcode is returned when the postcode cannot be resolved to a
	// location, whatever the underlying cause
	ErrInvalidPostcode = errors.New("invalid postcode")

	// ErrPostcodeNotFound is returned by a resolver when the lookup succeeded
	// but the postcode is unknown
	ErrPostcodeNotFound = errors.New("postcode not found")
)
