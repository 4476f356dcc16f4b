package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationValid(t *testing.T) {
	assert.True(t, Location{Latitude: 48.85, Longitude: 2.35}.Valid())
	assert.True(t, Location{Latitude: -33.87, Longitude: 151.21}.Valid())

	assert.False(t, Location{}.Valid(), "zero coordinates are unresolved")
	assert.False(t, Location{Latitude: 91, Longitude: 0}.Valid())
	assert.False(t, Location{Latitude: 0, Longitude: -181}.Valid())
}

func TestLocationDisplayName(t *testing.T) {
	assert.Equal(t, "Paris, France", Location{Name: "Paris", Country: "France"}.DisplayName())
	assert.Equal(t, "Paris", Location{Name: "Paris"}.DisplayName())
}

func TestWeatherCodeClassification(t *testing.T) {
	assert.Equal(t, "clear sky", WeatherCode(0).Description())
	assert.Equal(t, "rainy", WeatherCode(63).Description())
	assert.Equal(t, "snowy", WeatherCode(75).Description())
	assert.Equal(t, "thunderstorms", WeatherCode(95).Description())
	assert.Equal(t, "mixed or unknown conditions", WeatherCode(42).Description())

	assert.True(t, WeatherCode(61).IsRainy())
	assert.True(t, WeatherCode(80).IsRainy())
	assert.False(t, WeatherCode(0).IsRainy())

	assert.True(t, WeatherCode(71).IsSnowy())
	assert.True(t, WeatherCode(86).IsSnowy())
	assert.False(t, WeatherCode(61).IsSnowy())
}

func TestUnitsSymbols(t *testing.T) {
	assert.Equal(t, "°C", Metric.TemperatureUnit())
	assert.Equal(t, "km/h", Metric.WindUnit())
	assert.Equal(t, "°F", Imperial.TemperatureUnit())
	assert.Equal(t, "mph", Imperial.WindUnit())
}
