package datasource

import "errors"

// Error kinds surfaced by data sources. Callers match them with errors.Is;
// the concrete message wrapped around them carries the detail.
var (
	// ErrLocationNotFound means the geocoding service returned no candidate
	// for the query
	ErrLocationNotFound = errors.New("location not found")

	// ErrServiceUnavailable means a remote call could not be completed
	// (transport failure or non-200 status)
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrDataParse means the remote service answered but the payload was
	// malformed or missing required fields
	ErrDataParse = errors.New("could not parse weather data")
)
