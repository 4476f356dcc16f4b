package recommend

import (
	"errors"
	"strings"

	"weatherwear/models"
)

// ErrInvalidContext means the activity context string was neither
// "indoor" nor "outdoor"
var ErrInvalidContext = errors.New("invalid activity context")

// Context distinguishes indoor from outdoor use; outdoor-only advisories
// (e.g. wind protection) are suppressed indoors
type Context string

const (
	Indoor  Context = "indoor"
	Outdoor Context = "outdoor"
)

// ParseContext parses a user-supplied activity context, case-insensitively
func ParseContext(s string) (Context, error) {
	switch Context(strings.ToLower(strings.TrimSpace(s))) {
	case Indoor:
		return Indoor, nil
	case Outdoor:
		return Outdoor, nil
	default:
		return "", ErrInvalidContext
	}
}

// Thresholds holds the numeric cutoffs the rule engine evaluates against.
// Temperature bounds are upper bounds of their band, in the configured units.
type Thresholds struct {
	VeryCold float64 `json:"veryCold"` // below this: heaviest layers
	Cold     float64 `json:"cold"`
	Cool     float64 `json:"cool"`
	Mild     float64 `json:"mild"`
	Warm     float64 `json:"warm"` // at or above this: hot band

	WindySpeed      float64 `json:"windySpeed"`      // wind speed at or above which wind protection applies
	HumidPercent    float64 `json:"humidPercent"`    // relative humidity at or above which the humidity note applies
	RainProbability float64 `json:"rainProbability"` // precipitation probability at or above which rain protection applies
}

// DefaultThresholds returns the default policy for the given unit system.
// Temperature bands match the metric defaults converted for imperial; the
// wind cutoff is 20 km/h metric, roughly 12 mph imperial.
func DefaultThresholds(units models.Units) Thresholds {
	t := Thresholds{
		VeryCold:        -5,
		Cold:            5,
		Cool:            15,
		Mild:            22,
		Warm:            28,
		WindySpeed:      20,
		HumidPercent:    70,
		RainProbability: 50,
	}
	if units == models.Imperial {
		t.VeryCold = 23
		t.Cold = 41
		t.Cool = 59
		t.Mild = 72
		t.Warm = 82
		t.WindySpeed = 12
	}
	return t
}

// temperature bands, coldest first
type band int

const (
	bandVeryCold band = iota
	bandCold
	bandCool
	bandMild
	bandWarm
	bandHot
)

func (t Thresholds) bandFor(temp float64) band {
	switch {
	case temp < t.VeryCold:
		return bandVeryCold
	case temp < t.Cold:
		return bandCold
	case temp < t.Cool:
		return bandCool
	case temp < t.Mild:
		return bandMild
	case temp < t.Warm:
		return bandWarm
	default:
		return bandHot
	}
}

var primaryByBand = map[band]string{
	bandVeryCold: "a heavy winter coat, thermal layers, gloves, and a warm hat",
	bandCold:     "a warm jacket, sweater, and long pants",
	bandCool:     "a light jacket or hoodie with long pants",
	bandMild:     "a long-sleeve shirt or light sweater with jeans or chinos",
	bandWarm:     "a t-shirt or light top with breathable pants or shorts",
	bandHot:      "a very light t-shirt and shorts or other breathable clothing",
}

// Engine derives clothing recommendations from current conditions.
// It is a pure function of its inputs: no I/O, no state beyond the thresholds.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine with the given threshold policy
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Recommend evaluates the rules in fixed priority order: the temperature band
// sets the primary suggestion, then every matching advisory rule appends a
// note. Advisories are not mutually exclusive.
func (e *Engine) Recommend(cond models.CurrentConditions, activity Context) (models.Recommendation, error) {
	if activity != Indoor && activity != Outdoor {
		return models.Recommendation{}, ErrInvalidContext
	}

	b := e.thresholds.bandFor(cond.Temperature)
	rec := models.Recommendation{Primary: primaryByBand[b]}

	if cond.PrecipProb >= e.thresholds.RainProbability || cond.Code.IsRainy() {
		rec.Notes = append(rec.Notes, "carry a waterproof jacket or umbrella")
	}
	if cond.Code.IsSnowy() {
		rec.Notes = append(rec.Notes, "wear waterproof boots and an insulated jacket")
	}
	// Wind protection only matters outside
	if activity == Outdoor && cond.WindSpeed >= e.thresholds.WindySpeed {
		rec.Notes = append(rec.Notes, "add a windbreaker or an extra layer to block the wind")
	}
	if cond.Humidity >= e.thresholds.HumidPercent && (b == bandWarm || b == bandHot) {
		rec.Notes = append(rec.Notes, "choose moisture-wicking fabrics to stay comfortable in the humidity")
	}

	if activity == Indoor {
		rec.Notes = append(rec.Notes, "since you will be indoors, you can generally dress one level lighter than for a long stay outside")
	} else {
		rec.Notes = append(rec.Notes, "since you will be outdoors, plan for slightly harsher conditions than the current reading")
	}

	return rec, nil
}
