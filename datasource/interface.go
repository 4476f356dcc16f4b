package datasource

import (
	"context"

	"weatherwear/models"
)

// Geocoder resolves a free-text place name to coordinates
type Geocoder interface {
	// Geocode resolves a place name to a Location, picking the best-ranked
	// candidate when the service returns several
	Geocode(ctx context.Context, query string) (models.Location, error)

	// Name returns the service's name
	Name() string
}

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetCurrent fetches current conditions for a resolved location
	GetCurrent(ctx context.Context, loc models.Location) (models.CurrentConditions, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch daily forecasts
type ForecastSource interface {
	// FetchForecast fetches a daily forecast for the specified number of days
	FetchForecast(ctx context.Context, loc models.Location, days int) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}
