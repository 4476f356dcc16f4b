// Package chart renders a temperature trend line chart from a daily forecast.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"weatherwear/models"
)

// ErrInsufficientData means the forecast holds no points to plot
var ErrInsufficientData = errors.New("insufficient forecast data")

// Renderer draws daily forecast temperatures as a line chart
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer with the default chart dimensions
func NewRenderer() *Renderer {
	return &Renderer{width: 800, height: 500}
}

// Render draws the forecast as a PNG line chart (x = date, y = temperature)
// and writes it to w. One series for daily highs and one for daily lows.
// A single point still renders, but two or more make a meaningful line.
func (r *Renderer) Render(data models.ForecastData, w io.Writer) error {
	series, err := buildSeries(data)
	if err != nil {
		return err
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%d-Day Temperature Forecast: %s", len(data.Points), data.Location),
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("Temperature (%s)", data.Units.TemperatureUnit()),
		},
		Series: series,
	}

	// go-chart cannot infer axis ranges from a single x value; pad a day and
	// a degree around the lone point so it still renders
	if len(data.Points) == 1 {
		p := data.Points[0]
		graph.XAxis.Range = &chart.ContinuousRange{
			Min: float64(p.Date.AddDate(0, 0, -1).UnixNano()),
			Max: float64(p.Date.AddDate(0, 0, 1).UnixNano()),
		}
		lo, hi := p.Low, p.High
		if lo > hi {
			lo, hi = hi, lo
		}
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderFile renders the chart into a PNG file at path
func (r *Renderer) RenderFile(data models.ForecastData, path string) error {
	if len(data.Points) == 0 {
		return fmt.Errorf("%w: empty forecast", ErrInsufficientData)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return r.Render(data, f)
}

// buildSeries converts the forecast points into plot series. The point count
// of each series equals the number of forecast days.
func buildSeries(data models.ForecastData) ([]chart.Series, error) {
	if len(data.Points) == 0 {
		return nil, fmt.Errorf("%w: empty forecast", ErrInsufficientData)
	}

	high := chart.TimeSeries{
		Name: "Max Temp",
		Style: chart.Style{
			StrokeColor: chart.ColorRed,
			DotColor:    chart.ColorRed,
			DotWidth:    3,
		},
	}
	low := chart.TimeSeries{
		Name: "Min Temp",
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			DotColor:    chart.ColorBlue,
			DotWidth:    3,
		},
	}

	for _, p := range data.Points {
		high.XValues = append(high.XValues, p.Date)
		high.YValues = append(high.YValues, p.High)
		low.XValues = append(low.XValues, p.Date)
		low.YValues = append(low.YValues, p.Low)
	}

	return []chart.Series{high, low}, nil
}
