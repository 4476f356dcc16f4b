package models

import (
	"time"
)

// Units selects the measurement system for temperatures and wind speeds
type Units string

const (
	Metric   Units = "metric"   // Celsius, km/h
	Imperial Units = "imperial" // Fahrenheit, mph
)

// TemperatureUnit returns the symbol for temperatures in this system
func (u Units) TemperatureUnit() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// WindUnit returns the unit name for wind speeds in this system
func (u Units) WindUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "km/h"
}

// CurrentConditions represents the current weather at a location
type CurrentConditions struct {
	Temperature float64     `json:"temperature"` // in the configured units
	FeelsLike   float64     `json:"feelsLike"`   // apparent temperature
	WindSpeed   float64     `json:"windSpeed"`
	Humidity    float64     `json:"humidity"`   // percentage
	PrecipProb  float64     `json:"precipProb"` // precipitation probability, percentage
	Code        WeatherCode `json:"weatherCode"`
	Units       Units       `json:"units"`
	Timestamp   time.Time   `json:"timestamp"`
}

// WeatherCode is a WMO weather interpretation code as reported by Open-Meteo
type WeatherCode int

// Description maps the code to a short human-readable condition.
// Groups follow the WMO code table, simplified.
func (c WeatherCode) Description() string {
	switch {
	case c == 0:
		return "clear sky"
	case c >= 1 && c <= 3:
		return "partly cloudy or overcast"
	case c == 45 || c == 48:
		return "foggy or misty"
	case c >= 51 && c <= 57:
		return "drizzle or light rain"
	case (c >= 61 && c <= 67) || (c >= 80 && c <= 82):
		return "rainy"
	case (c >= 71 && c <= 77) || c == 85 || c == 86:
		return "snowy"
	case c == 95 || c == 96 || c == 99:
		return "thunderstorms"
	default:
		return "mixed or unknown conditions"
	}
}

// IsRainy reports whether the code describes rain or drizzle
func (c WeatherCode) IsRainy() bool {
	return (c >= 51 && c <= 67) || (c >= 80 && c <= 82)
}

// IsSnowy reports whether the code describes snowfall
func (c WeatherCode) IsSnowy() bool {
	return (c >= 71 && c <= 77) || c == 85 || c == 86
}
