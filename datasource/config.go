package datasource

import (
	"encoding/json"
	"os"

	"weatherwear/models"
	"weatherwear/recommend"
)

// Default Open-Meteo endpoints. Both services are free and keyless.
const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Environment variables that override the endpoints, loaded from the
// process environment (optionally populated from a .env file)
const (
	EnvGeocodingURL = "WEATHERWEAR_GEOCODING_URL"
	EnvForecastURL  = "WEATHERWEAR_FORECAST_URL"
)

// Config represents the application configuration
type Config struct {
	// Open-Meteo endpoint base URLs
	GeocodingURL string `json:"geocodingURL"`
	ForecastURL  string `json:"forecastURL"`

	// Measurement system for temperatures and wind speeds
	Units models.Units `json:"units"`

	// Rate limiting applied to outgoing API calls
	RateLimit struct {
		RequestsPerSecond float64 `json:"requestsPerSecond"`
		Burst             int     `json:"burst"`
	} `json:"rateLimit"`

	// Where the temperature trend chart is written
	ChartFile string `json:"chartFile"`

	// Numeric cutoffs for the recommendation rules
	Thresholds recommend.Thresholds `json:"thresholds"`
}

// LoadConfig loads configuration from a JSON file. A missing file is not an
// error: the defaults are returned so the tool works with zero setup.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	if config.Units != models.Metric && config.Units != models.Imperial {
		config.Units = models.Metric
	}

	return config, nil
}

// EnsureThresholds fills unset threshold fields from the default policy for
// the configured unit system, so a config file may override just the cutoffs
// it cares about. A zero field counts as unset. Called after all unit
// overrides (flags, env) have been applied.
func (c *Config) EnsureThresholds() {
	def := recommend.DefaultThresholds(c.Units)
	t := &c.Thresholds
	if t.VeryCold == 0 {
		t.VeryCold = def.VeryCold
	}
	if t.Cold == 0 {
		t.Cold = def.Cold
	}
	if t.Cool == 0 {
		t.Cool = def.Cool
	}
	if t.Mild == 0 {
		t.Mild = def.Mild
	}
	if t.Warm == 0 {
		t.Warm = def.Warm
	}
	if t.WindySpeed == 0 {
		t.WindySpeed = def.WindySpeed
	}
	if t.HumidPercent == 0 {
		t.HumidPercent = def.HumidPercent
	}
	if t.RainProbability == 0 {
		t.RainProbability = def.RainProbability
	}
}

// ApplyEnv overrides the endpoint URLs from the environment when set
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvGeocodingURL); v != "" {
		c.GeocodingURL = v
	}
	if v := os.Getenv(EnvForecastURL); v != "" {
		c.ForecastURL = v
	}
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{
		GeocodingURL: DefaultGeocodingURL,
		ForecastURL:  DefaultForecastURL,
		Units:        models.Metric,
		ChartFile:    "temperature_chart.png",
	}
	// Open-Meteo asks non-commercial users to stay under 600 calls/minute;
	// one call per second with a small burst is far inside that
	config.RateLimit.RequestsPerSecond = 1.0
	config.RateLimit.Burst = 3
	return config
}
