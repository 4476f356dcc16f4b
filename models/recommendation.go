package models

// Recommendation is the clothing advice derived from current conditions
type Recommendation struct {
	Primary string   `json:"primary"` // base outfit suggestion for the temperature band
	Notes   []string `json:"notes"`   // advisory notes, e.g. rain protection
}
