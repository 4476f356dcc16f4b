package datasource

import (
	"context"
	"fmt"

	"weatherwear/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a provider implementing all three data-source
// interfaces with a shared rate limiter, so geocoding and forecast calls
// together stay inside the service's request budget
type RateLimitedProvider struct {
	geocoder    Geocoder
	provider    WeatherProvider
	forecastSrc ForecastSource
	limiter     *rate.Limiter
	name        string
}

// NewRateLimitedProvider creates a rate limited wrapper around a provider.
// rps is the maximum requests per second allowed (can be fractional for less
// than 1 request per second); burst is the maximum burst size allowed.
func NewRateLimitedProvider(provider *OpenMeteoProvider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		geocoder:    provider,
		provider:    provider,
		forecastSrc: provider,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
		name:        fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// Geocode resolves a place name, respecting rate limits
func (r *RateLimitedProvider) Geocode(ctx context.Context, query string) (models.Location, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.geocoder.Geocode(ctx, query)
}

// GetCurrent fetches current conditions, respecting rate limits
func (r *RateLimitedProvider) GetCurrent(ctx context.Context, loc models.Location) (models.CurrentConditions, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetCurrent(ctx, loc)
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, loc models.Location, days int) (models.ForecastData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.forecastSrc.FetchForecast(ctx, loc, days)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// Verify that the rate limited type implements the required interfaces
var (
	_ Geocoder        = (*RateLimitedProvider)(nil)
	_ WeatherProvider = (*RateLimitedProvider)(nil)
	_ ForecastSource  = (*RateLimitedProvider)(nil)
)
