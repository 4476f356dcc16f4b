package models

// Location is a geocoded place: the user's original query plus the
// coordinates and metadata the geocoding service resolved it to
type Location struct {
	Query     string  `json:"query"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the location carries usable coordinates.
// The zero coordinate pair (0, 0) is treated as unresolved; it is in the
// Gulf of Guinea and never a geocoding result for a named place.
func (l Location) Valid() bool {
	if l.Latitude < -90 || l.Latitude > 90 {
		return false
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return false
	}
	return l.Latitude != 0 || l.Longitude != 0
}

// DisplayName returns the resolved name with the country appended when known
func (l Location) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}
