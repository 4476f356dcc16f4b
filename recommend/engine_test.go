package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherwear/models"
)

func metricConditions(temp float64) models.CurrentConditions {
	return models.CurrentConditions{
		Temperature: temp,
		Units:       models.Metric,
	}
}

func TestParseContext(t *testing.T) {
	ctx, err := ParseContext("Outdoor")
	require.NoError(t, err)
	assert.Equal(t, Outdoor, ctx)

	ctx, err = ParseContext("  indoor ")
	require.NoError(t, err)
	assert.Equal(t, Indoor, ctx)

	_, err = ParseContext("underwater")
	assert.ErrorIs(t, err, ErrInvalidContext)

	_, err = ParseContext("")
	assert.ErrorIs(t, err, ErrInvalidContext)
}

func TestRecommendRejectsInvalidContext(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))
	_, err := engine.Recommend(metricConditions(20), Context("sideways"))
	assert.ErrorIs(t, err, ErrInvalidContext)
}

func TestColdTemperaturesSuggestColdWeatherClothing(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))

	// Below the cold cutoff the primary suggestion must be a cold-weather
	// outfit regardless of activity context
	for _, temp := range []float64{-20, -5.1, -1, 0, 4.9} {
		for _, ctx := range []Context{Indoor, Outdoor} {
			rec, err := engine.Recommend(metricConditions(temp), ctx)
			require.NoError(t, err)
			assert.Contains(t, []string{
				primaryByBand[bandVeryCold],
				primaryByBand[bandCold],
			}, rec.Primary, "temp=%v ctx=%v", temp, ctx)
		}
	}
}

func TestWarmTemperaturesSuggestWarmWeatherClothing(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))

	for _, temp := range []float64{22, 27.9, 28, 35} {
		for _, ctx := range []Context{Indoor, Outdoor} {
			rec, err := engine.Recommend(metricConditions(temp), ctx)
			require.NoError(t, err)
			assert.Contains(t, []string{
				primaryByBand[bandWarm],
				primaryByBand[bandHot],
			}, rec.Primary, "temp=%v ctx=%v", temp, ctx)
		}
	}
}

func TestTemperatureBandBoundaries(t *testing.T) {
	th := DefaultThresholds(models.Metric)

	assert.Equal(t, bandVeryCold, th.bandFor(-5.1))
	assert.Equal(t, bandCold, th.bandFor(-5))
	assert.Equal(t, bandCool, th.bandFor(5))
	assert.Equal(t, bandMild, th.bandFor(15))
	assert.Equal(t, bandWarm, th.bandFor(22))
	assert.Equal(t, bandHot, th.bandFor(28))
}

func TestRainNoteFollowsPrecipitationProbability(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))
	rainNote := "carry a waterproof jacket or umbrella"

	cond := metricConditions(18)
	cond.PrecipProb = 80
	rec, err := engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.Contains(t, rec.Notes, rainNote)

	cond.PrecipProb = 10
	rec, err = engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.NotContains(t, rec.Notes, rainNote)
}

func TestRainyWeatherCodeTriggersRainNote(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))

	cond := metricConditions(18)
	cond.Code = 63 // moderate rain
	rec, err := engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.Contains(t, rec.Notes, "carry a waterproof jacket or umbrella")
}

func TestSnowyWeatherCodeTriggersBootsNote(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))

	cond := metricConditions(-2)
	cond.Code = 73 // moderate snowfall
	rec, err := engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.Contains(t, rec.Notes, "wear waterproof boots and an insulated jacket")
}

func TestIndoorContextSuppressesWindNote(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))
	windNote := "add a windbreaker or an extra layer to block the wind"

	cond := metricConditions(10)
	cond.WindSpeed = 45 // well above the windy cutoff

	rec, err := engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.Contains(t, rec.Notes, windNote)

	rec, err = engine.Recommend(cond, Indoor)
	require.NoError(t, err)
	assert.NotContains(t, rec.Notes, windNote)
}

func TestHumidityNoteOnlyInWarmBands(t *testing.T) {
	engine := NewEngine(DefaultThresholds(models.Metric))
	humidNote := "choose moisture-wicking fabrics to stay comfortable in the humidity"

	cond := metricConditions(25)
	cond.Humidity = 85
	rec, err := engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.Contains(t, rec.Notes, humidNote)

	// Same humidity in a cool band gets no humidity note
	cond.Temperature = 10
	rec, err = engine.Recommend(cond, Outdoor)
	require.NoError(t, err)
	assert.NotContains(t, rec.Notes, humidNote)
}

func TestParisWinterScenario(t *testing.T) {
	// 2°C, wind 10 km/h, precipitation 80%, outdoor: a warm jacket plus
	// rain protection, but no wind note (10 km/h is under the cutoff)
	engine := NewEngine(DefaultThresholds(models.Metric))

	cond := models.CurrentConditions{
		Temperature: 2,
		WindSpeed:   10,
		PrecipProb:  80,
		Units:       models.Metric,
	}
	rec, err := engine.Recommend(cond, Outdoor)
	require.NoError(t, err)

	assert.Equal(t, primaryByBand[bandCold], rec.Primary)
	assert.Contains(t, rec.Notes, "carry a waterproof jacket or umbrella")
	assert.NotContains(t, rec.Notes, "add a windbreaker or an extra layer to block the wind")
}

func TestDefaultThresholdsPerUnits(t *testing.T) {
	metric := DefaultThresholds(models.Metric)
	assert.Equal(t, 20.0, metric.WindySpeed)

	imperial := DefaultThresholds(models.Imperial)
	assert.Equal(t, 12.0, imperial.WindySpeed)
	assert.Equal(t, 23.0, imperial.VeryCold)
}
