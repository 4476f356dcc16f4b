package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"weatherwear/chart"
	"weatherwear/datasource"
	"weatherwear/models"
	"weatherwear/recommend"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// forecastDays is the length of the temperature trend chart
const forecastDays = 5

func main() {
	// Load environment variables from .env file, if present
	envLoaded := godotenv.Load() == nil

	// Parse command line arguments
	city := flag.String("city", "", "City name to look up (prompts if empty)")
	activity := flag.String("context", "", "Activity context: indoor or outdoor (prompts if empty)")
	unitsFlag := flag.String("units", "", "Measurement system: metric or imperial (overrides config)")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	chartFile := flag.String("out", "", "Chart output file (overrides config)")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if envLoaded {
		sugar.Debug("Loaded environment overrides from .env")
	}

	// Load configuration; a missing file means defaults
	cfg, err := datasource.LoadConfig(*configFile)
	if err != nil {
		sugar.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv()
	if *unitsFlag != "" {
		units, err := parseUnits(*unitsFlag)
		if err != nil {
			sugar.Fatalf("%v", err)
		}
		if units != cfg.Units {
			cfg.Units = units
			// Threshold policy must match the unit system
			cfg.Thresholds = recommend.Thresholds{}
		}
	}
	cfg.EnsureThresholds()
	if *chartFile != "" {
		cfg.ChartFile = *chartFile
	}

	// Gather the remaining inputs interactively
	reader := bufio.NewReader(os.Stdin)
	cityName := strings.TrimSpace(*city)
	if cityName == "" {
		cityName = prompt(reader, "Enter your city name (e.g., Buffalo, London, Dhaka): ")
	}
	if cityName == "" {
		sugar.Fatal("City name is required")
	}

	activityStr := strings.TrimSpace(*activity)
	if activityStr == "" {
		activityStr = prompt(reader, "Are you going indoor or outdoor? (type 'indoor' or 'outdoor'): ")
	}
	// Validate the context before any network call is made
	activityCtx, err := recommend.ParseContext(activityStr)
	if err != nil {
		sugar.Fatalf("Context %q not recognized: use 'indoor' or 'outdoor'", activityStr)
	}

	// Wire up the Open-Meteo provider, rate limited by default
	provider := datasource.NewOpenMeteoProvider(cfg.GeocodingURL, cfg.ForecastURL, cfg.Units, sugar)
	var geocoder datasource.Geocoder = provider
	var weather datasource.WeatherProvider = provider
	var forecasts datasource.ForecastSource = provider
	if *enableRateLimiting {
		limited := datasource.NewRateLimitedProvider(provider, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		geocoder, weather, forecasts = limited, limited, limited
		sugar.Debugf("Applied rate limiting to %s provider", provider.Name())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("\nLooking up your location...")
	loc, err := geocoder.Geocode(ctx, cityName)
	if err != nil {
		if errors.Is(err, datasource.ErrLocationNotFound) {
			sugar.Fatalf("No location found for %q", cityName)
		}
		sugar.Fatalf("Could not retrieve weather data: %v", err)
	}
	fmt.Printf("Found: %s (lat=%.4f, lon=%.4f)\n", loc.DisplayName(), loc.Latitude, loc.Longitude)

	fmt.Println("Fetching current weather...")
	cond, err := weather.GetCurrent(ctx, loc)
	if err != nil {
		sugar.Fatalf("Could not retrieve weather data: %v", err)
	}

	engine := recommend.NewEngine(cfg.Thresholds)
	rec, err := engine.Recommend(cond, activityCtx)
	if err != nil {
		sugar.Fatalf("Could not build recommendation: %v", err)
	}

	fmt.Println()
	fmt.Println(formatSummary(loc, cond))
	fmt.Println("\nClothing Recommendation:")
	fmt.Printf("Wear %s.\n", rec.Primary)
	for _, note := range rec.Notes {
		fmt.Printf("  - %s\n", note)
	}

	fmt.Printf("\nGenerating %d-day temperature chart...\n", forecastDays)
	forecast, err := forecasts.FetchForecast(ctx, loc, forecastDays)
	if err != nil {
		sugar.Fatalf("Could not retrieve weather data: %v", err)
	}
	if err := chart.NewRenderer().RenderFile(forecast, cfg.ChartFile); err != nil {
		sugar.Fatalf("Could not generate temperature chart: %v", err)
	}
	fmt.Printf("Temperature chart saved as %s\n", cfg.ChartFile)
}

// prompt reads one trimmed line from the user
func prompt(reader *bufio.Reader, question string) string {
	fmt.Print(question)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func parseUnits(s string) (models.Units, error) {
	switch models.Units(strings.ToLower(strings.TrimSpace(s))) {
	case models.Metric:
		return models.Metric, nil
	case models.Imperial:
		return models.Imperial, nil
	default:
		return "", fmt.Errorf("unknown units %q: use 'metric' or 'imperial'", s)
	}
}

// formatSummary renders the current conditions as a readable block
func formatSummary(loc models.Location, cond models.CurrentConditions) string {
	lines := []string{
		fmt.Sprintf("Weather summary for %s:", loc.DisplayName()),
		fmt.Sprintf("  Condition     : %s", cond.Code.Description()),
		fmt.Sprintf("  Temperature   : %.1f%s", cond.Temperature, cond.Units.TemperatureUnit()),
		fmt.Sprintf("  Feels like    : %.1f%s", cond.FeelsLike, cond.Units.TemperatureUnit()),
		fmt.Sprintf("  Humidity      : %.0f%%", cond.Humidity),
		fmt.Sprintf("  Wind speed    : %.1f %s", cond.WindSpeed, cond.Units.WindUnit()),
		fmt.Sprintf("  Rain chance   : %.0f%%", cond.PrecipProb),
	}
	return strings.Join(lines, "\n")
}
