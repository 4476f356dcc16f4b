package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"weatherwear/models"
)

// OpenMeteoProvider implements Geocoder, WeatherProvider and ForecastSource
// against the free Open-Meteo APIs. No API key is required.
type OpenMeteoProvider struct {
	geocodingURL string
	forecastURL  string
	units        models.Units
	httpClient   *http.Client
	logger       *zap.SugaredLogger
}

// NewOpenMeteoProvider creates a new Open-Meteo provider. A nil logger
// disables request diagnostics.
func NewOpenMeteoProvider(geocodingURL, forecastURL string, units models.Units, logger *zap.SugaredLogger) *OpenMeteoProvider {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &OpenMeteoProvider{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		units:        units,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Name returns the provider name
func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

// Geocode resolves a place name via the Open-Meteo geocoding API. When the
// service ranks several candidates, the first (best) one is used.
func (p *OpenMeteoProvider) Geocode(ctx context.Context, query string) (models.Location, error) {
	if query == "" {
		return models.Location{}, fmt.Errorf("empty query: %w", ErrLocationNotFound)
	}

	params := url.Values{}
	params.Add("name", query)
	params.Add("count", "1")
	params.Add("language", "en")
	params.Add("format", "json")

	body, err := p.get(ctx, p.geocodingURL, params)
	if err != nil {
		return models.Location{}, err
	}

	var response struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Timezone  string  `json:"timezone"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Location{}, fmt.Errorf("%w: geocoding response: %v", ErrDataParse, err)
	}

	if len(response.Results) == 0 {
		return models.Location{}, fmt.Errorf("no match for %q: %w", query, ErrLocationNotFound)
	}

	first := response.Results[0]
	return models.Location{
		Query:     query,
		Name:      first.Name,
		Country:   first.Country,
		Timezone:  first.Timezone,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
	}, nil
}

// GetCurrent fetches current conditions for a resolved location
func (p *OpenMeteoProvider) GetCurrent(ctx context.Context, loc models.Location) (models.CurrentConditions, error) {
	if !loc.Valid() {
		return models.CurrentConditions{}, fmt.Errorf("location %q has no valid coordinates", loc.Query)
	}

	params := p.coordParams(loc)
	params.Add("current", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation_probability,weather_code,wind_speed_10m")
	params.Add("wind_speed_unit", p.windSpeedUnit())

	body, err := p.get(ctx, p.forecastURL, params)
	if err != nil {
		return models.CurrentConditions{}, err
	}

	var response struct {
		Current *struct {
			Time        string  `json:"time"`
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			FeelsLike   float64 `json:"apparent_temperature"`
			PrecipProb  float64 `json:"precipitation_probability"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("%w: current conditions response: %v", ErrDataParse, err)
	}
	if response.Current == nil {
		return models.CurrentConditions{}, fmt.Errorf("%w: no current block in response", ErrDataParse)
	}

	cur := response.Current
	timestamp, err := time.Parse("2006-01-02T15:04", cur.Time)
	if err != nil {
		timestamp = time.Now()
	}

	return models.CurrentConditions{
		Temperature: cur.Temperature,
		FeelsLike:   cur.FeelsLike,
		WindSpeed:   cur.WindSpeed,
		Humidity:    cur.Humidity,
		PrecipProb:  cur.PrecipProb,
		Code:        models.WeatherCode(cur.WeatherCode),
		Units:       p.units,
		Timestamp:   timestamp,
	}, nil
}

// FetchForecast fetches the daily forecast for the specified number of days
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, loc models.Location, days int) (models.ForecastData, error) {
	if !loc.Valid() {
		return models.ForecastData{}, fmt.Errorf("location %q has no valid coordinates", loc.Query)
	}

	params := p.coordParams(loc)
	params.Add("daily", "temperature_2m_max,temperature_2m_min")
	params.Add("forecast_days", strconv.Itoa(days))

	body, err := p.get(ctx, p.forecastURL, params)
	if err != nil {
		return models.ForecastData{}, err
	}

	var response struct {
		Daily *struct {
			Time []string  `json:"time"`
			Max  []float64 `json:"temperature_2m_max"`
			Min  []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastData{}, fmt.Errorf("%w: forecast response: %v", ErrDataParse, err)
	}
	daily := response.Daily
	if daily == nil || len(daily.Time) == 0 {
		return models.ForecastData{}, fmt.Errorf("%w: no daily block in response", ErrDataParse)
	}
	if len(daily.Max) != len(daily.Time) || len(daily.Min) != len(daily.Time) {
		return models.ForecastData{}, fmt.Errorf("%w: daily arrays have mismatched lengths", ErrDataParse)
	}

	forecast := models.ForecastData{
		Location: loc.DisplayName(),
		Units:    p.units,
		Updated:  time.Now(),
	}
	for i, d := range daily.Time {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			return models.ForecastData{}, fmt.Errorf("%w: daily date %q: %v", ErrDataParse, d, err)
		}
		forecast.Points = append(forecast.Points, models.ForecastPoint{
			Date: date,
			High: daily.Max[i],
			Low:  daily.Min[i],
		})
	}

	return forecast, nil
}

// get issues a single GET request and returns the response body.
// Exactly one attempt per call; there is no retry policy.
func (p *OpenMeteoProvider) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := endpoint + "?" + params.Encode()
	p.logger.Debugf("GET %s", requestURL)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API error (status %d): %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	return body, nil
}

func (p *OpenMeteoProvider) coordParams(loc models.Location) url.Values {
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Add("timezone", "auto")
	params.Add("temperature_unit", p.temperatureUnit())
	return params
}

func (p *OpenMeteoProvider) temperatureUnit() string {
	if p.units == models.Imperial {
		return "fahrenheit"
	}
	return "celsius"
}

func (p *OpenMeteoProvider) windSpeedUnit() string {
	if p.units == models.Imperial {
		return "mph"
	}
	return "kmh"
}

// Verify the provider implements all three interfaces
var (
	_ Geocoder        = (*OpenMeteoProvider)(nil)
	_ WeatherProvider = (*OpenMeteoProvider)(nil)
	_ ForecastSource  = (*OpenMeteoProvider)(nil)
)
