package models

import (
	"time"
)

// ForecastPoint is a single day's predicted temperature range
type ForecastPoint struct {
	Date time.Time `json:"date"`
	High float64   `json:"high"` // daily maximum temperature
	Low  float64   `json:"low"`  // daily minimum temperature
}

// ForecastData represents a daily forecast for a location
type ForecastData struct {
	Location string          `json:"location"` // resolved location name
	Units    Units           `json:"units"`
	Points   []ForecastPoint `json:"points"`  // ordered by date, ascending
	Updated  time.Time       `json:"updated"` // when this forecast was fetched
}
